// Package menu provides the title screen.
package menu

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pipehop/internal/application/scene"
	"github.com/younwookim/pipehop/internal/application/session"
	"github.com/younwookim/pipehop/internal/application/state"
	"github.com/younwookim/pipehop/internal/application/system"
)

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorTitle    = color.RGBA{255, 215, 0, 255}
	colorText     = color.RGBA{255, 255, 255, 255}
	colorSubtitle = color.RGBA{170, 170, 200, 255}
)

var controls = []string{
	"ARROWS / A D   move",
	"SPACE / UP / W jump",
	"ESC            pause",
	"R              restart",
	"F1             FPS overlay",
}

// InputSource supplies one frame of input
type InputSource interface {
	GetInput() system.InputState
}

// Menu is the MENU state screen. Start hands over to the playing scene;
// Escape ends the game.
type Menu struct {
	session *session.Session
	input   InputSource
	playing scene.Scene
	title   string
	screenW int
	screenH int
	ticks   int
}

// New creates the menu scene
func New(s *session.Session, input InputSource, title string) *Menu {
	display := s.Physics().Display
	return &Menu{
		session: s,
		input:   input,
		title:   title,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
	}
}

// SetPlaying sets the scene entered when a run starts
func (m *Menu) SetPlaying(playing scene.Scene) {
	m.playing = playing
}

// Update implements scene.Scene. Quitting maps to ebiten.Termination so
// the game loop exits without an error.
func (m *Menu) Update() (scene.Scene, error) {
	m.ticks++

	if err := m.session.Update(m.input.GetInput()); err != nil {
		if errors.Is(err, session.ErrQuit) {
			return nil, ebiten.Termination
		}
		return nil, err
	}

	if m.session.State() != state.StateMenu {
		return m.playing, nil
	}
	return nil, nil
}

// Draw implements scene.Scene
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	cx := float64(m.screenW) / 2

	scene.DrawTextCentered(screen, m.title, cx, 110, 5, colorTitle)

	info := fmt.Sprintf("%d LEVELS", m.session.LevelCount())
	if start := m.session.StartLevel(); start > 0 {
		info += fmt.Sprintf("  (STARTING AT %d)", start+1)
	}
	scene.DrawTextCentered(screen, info, cx, 210, 2, colorSubtitle)

	// Blink the prompt twice a second
	if (m.ticks/30)%2 == 0 {
		scene.DrawTextCentered(screen, "PRESS ENTER TO START", cx, 270, 2, colorText)
	}

	for i, line := range controls {
		scene.DrawText(screen, line, cx-120, 350+float64(i)*24, 1.5, colorSubtitle)
	}
	scene.DrawTextCentered(screen, "ESC TO QUIT", cx, 520, 1.5, colorSubtitle)
}

// OnEnter implements scene.Scene
func (m *Menu) OnEnter() {
	m.ticks = 0
}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {}
