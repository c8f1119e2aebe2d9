// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pipehop/internal/application/replay"
	"github.com/younwookim/pipehop/internal/application/scene"
	"github.com/younwookim/pipehop/internal/application/session"
	"github.com/younwookim/pipehop/internal/application/state"
	"github.com/younwookim/pipehop/internal/application/system"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
	"github.com/younwookim/pipehop/internal/infrastructure/watch"
)

// InputSource supplies one frame of input. *system.InputSystem reads the
// keyboard; tests pass a scripted source.
type InputSource interface {
	GetInput() system.InputState
}

// Options configures optional Playing features
type Options struct {
	// RecordPath, if set, records every frame of input and saves it there
	// on game over, victory and scene exit. A recording covers one run:
	// it stops once the run ends or physics is reloaded.
	RecordPath string

	// Watcher and Loader enable hot reload of physics.yaml.
	Watcher *watch.Watcher
	Loader  *config.Loader

	Logger *log.Logger
}

// Playing is the main gameplay scene. It covers the PLAYING, PAUSED,
// GAME_OVER and VICTORY states; the session returning to MENU hands
// control back to the menu scene.
type Playing struct {
	session *session.Session
	input   InputSource
	menu    scene.Scene
	logger  *log.Logger

	screenW int
	screenH int

	pauseUI *ebitenui.UI
	// pending holds events from pause menu buttons. The panel updates
	// before input is read, so a click lands on the same frame.
	pending system.InputState

	recorder   *replay.Recorder
	recordPath string
	lastState  state.GameState

	watcher *watch.Watcher
	loader  *config.Loader
}

// New creates a new Playing scene.
func New(s *session.Session, input InputSource, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	display := s.Physics().Display
	p := &Playing{
		session:    s,
		input:      input,
		logger:     logger,
		screenW:    display.ScreenWidth,
		screenH:    display.ScreenHeight,
		recordPath: opts.RecordPath,
		watcher:    opts.Watcher,
		loader:     opts.Loader,
	}
	p.pauseUI = newPauseUI(p, p.screenW, p.screenH)
	return p
}

// SetMenu sets the scene returned when the session goes back to the menu
func (p *Playing) SetMenu(menu scene.Scene) {
	p.menu = menu
}

// Update implements scene.Scene
func (p *Playing) Update() (scene.Scene, error) {
	p.pollConfig()

	if p.session.State() == state.StatePaused {
		p.pauseUI.Update()
	}

	in := p.input.GetInput().Merge(p.pending)
	p.pending = system.InputState{}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	if err := p.session.Update(in); err != nil {
		return nil, err
	}

	st := p.session.State()
	if st != p.lastState && st.IsTerminal() {
		p.stopRecording("run ended")
	}
	p.lastState = st

	if st == state.StateMenu {
		return p.menu, nil
	}
	return nil, nil
}

// OnEnter implements scene.Scene. A new recording starts each time the
// menu hands over, since the session has just begun a fresh run.
func (p *Playing) OnEnter() {
	p.pending = system.InputState{}
	p.lastState = p.session.State()
	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(p.session.StartLevel(), p.session.LevelIDs())
		p.logger.Info("recording enabled", "file", p.recordPath)
	}
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// stopRecording saves the recording and stops adding frames to it
func (p *Playing) stopRecording(reason string) {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.saveRecording()
	p.recorder.Stop()
	p.logger.Info("recording stopped", "reason", reason, "frames", p.recorder.FrameCount())
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	if err := p.recorder.Save(p.recordPath); err != nil {
		p.logger.Error("failed to save recording", "file", p.recordPath, "err", err)
		return
	}
	p.logger.Info("recording saved", "file", p.recordPath, "frames", p.recorder.FrameCount())
}

// pollConfig applies physics.yaml edits reported by the watcher.
// Level files are validated at startup only, so their edits are ignored.
func (p *Playing) pollConfig() {
	if p.watcher == nil || p.loader == nil {
		return
	}

	changed, err := p.watcher.Drain()
	if err != nil {
		p.logger.Warn("config watcher error", "err", err)
	}

	for _, name := range changed {
		if filepath.Base(name) != "physics.yaml" {
			p.logger.Debug("ignoring config change", "file", name)
			continue
		}
		phys, err := p.loader.LoadPhysics()
		if err != nil {
			p.logger.Warn("physics reload failed", "err", err)
			continue
		}
		p.applyPhysics(phys)
	}
}

// applyPhysics swaps in reloaded physics. Recordings hold input only, so a
// replay cannot follow a mid-run physics change; the recording ends here.
func (p *Playing) applyPhysics(phys *config.PhysicsConfig) bool {
	if err := p.session.SetPhysics(phys); err != nil {
		switch {
		case errors.Is(err, system.ErrInvalidLevel):
			p.logger.Warn("physics rejected: levels no longer valid", "err", err)
		case errors.Is(err, config.ErrInvalidPhysics):
			p.logger.Warn("physics rejected", "err", err)
		default:
			p.logger.Warn("physics reload failed", "err", err)
		}
		return false
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		p.logger.Warn("physics changed while recording; replay would diverge", "file", p.recordPath)
		p.stopRecording("physics reloaded")
	}
	return true
}

// Draw implements scene.Scene
func (p *Playing) Draw(screen *ebiten.Image) {
	p.drawLevel(screen)
	p.drawHUD(screen)

	switch p.session.State() {
	case state.StatePaused:
		p.drawDim(screen)
		p.pauseUI.Draw(screen)
		p.drawLevelStats(screen)
	case state.StateGameOver:
		p.drawDim(screen)
		p.drawBanner(screen, "GAME OVER", colorDanger)
	case state.StateVictory:
		p.drawDim(screen)
		p.drawBanner(screen, "YOU WIN!", colorGold)
	}
}
