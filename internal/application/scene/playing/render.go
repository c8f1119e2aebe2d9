package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/pipehop/internal/application/scene"
	"github.com/younwookim/pipehop/internal/domain/entity"
)

// Colors for rendering
var (
	colorSky      = color.RGBA{92, 148, 252, 255}
	colorGround   = color.RGBA{160, 96, 40, 255}
	colorBrick    = color.RGBA{200, 76, 12, 255}
	colorBlock    = color.RGBA{228, 160, 32, 255}
	colorPipe     = color.RGBA{0, 168, 0, 255}
	colorOutline  = color.RGBA{0, 0, 0, 90}
	colorPlayer   = color.RGBA{228, 40, 40, 255}
	colorEnemy    = color.RGBA{140, 80, 30, 255}
	colorEye      = color.RGBA{255, 255, 255, 255}
	colorGold     = color.RGBA{255, 215, 0, 255}
	colorLife     = color.RGBA{40, 200, 80, 255}
	colorPole     = color.RGBA{220, 220, 220, 255}
	colorFlag     = color.RGBA{40, 200, 80, 255}
	colorHUD      = color.RGBA{255, 255, 255, 255}
	colorHUDBar   = color.RGBA{0, 0, 0, 120}
	colorDim      = color.RGBA{0, 0, 0, 140}
	colorDanger   = color.RGBA{255, 80, 80, 255}
	colorSubtitle = color.RGBA{220, 220, 220, 255}
)

// starColors cycles while the star power-up is active
var starColors = []color.RGBA{
	{255, 255, 255, 255},
	{255, 215, 0, 255},
	{255, 120, 40, 255},
	{120, 200, 255, 255},
}

func platformColor(k entity.PlatformKind) color.Color {
	switch k {
	case entity.PlatformBrick:
		return colorBrick
	case entity.PlatformBlock:
		return colorBlock
	case entity.PlatformPipe:
		return colorPipe
	default:
		return colorGround
	}
}

func fillRect(dst *ebiten.Image, r entity.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (p *Playing) drawLevel(screen *ebiten.Image) {
	screen.Fill(colorSky)

	level := p.session.Level()
	if level == nil {
		return
	}

	for _, pl := range level.Platforms {
		fillRect(screen, pl.Rect, platformColor(pl.Kind))
		vector.StrokeRect(screen, float32(pl.X), float32(pl.Y), float32(pl.W), float32(pl.H), 2, colorOutline, false)
	}

	p.drawGoal(screen, level.Goal)

	for _, c := range level.Coins {
		if !c.Collected {
			fillRect(screen, c.Rect, colorGold)
		}
	}

	for _, pu := range level.PowerUps {
		if pu.Collected {
			continue
		}
		clr := color.Color(colorLife)
		if pu.Kind == entity.PowerUpStar {
			clr = starColors[(p.session.Frame()/6)%len(starColors)]
		}
		fillRect(screen, pu.Rect, clr)
	}

	for _, e := range level.Enemies {
		if e.Alive {
			p.drawEnemy(screen, e)
		}
	}

	p.drawPlayer(screen)
}

func (p *Playing) drawGoal(screen *ebiten.Image, g entity.Goal) {
	pole := entity.Rect{X: g.X + g.W/2 - 2, Y: g.Y, W: 4, H: g.H}
	fillRect(screen, pole, colorPole)
	fillRect(screen, entity.Rect{X: pole.X - 24, Y: g.Y + 4, W: 24, H: 16}, colorFlag)
}

func (p *Playing) drawEnemy(screen *ebiten.Image, e *entity.Enemy) {
	fillRect(screen, e.Rect(), colorEnemy)

	eyeX := e.X + 4
	if e.FacingRight() {
		eyeX = e.X + e.W - 10
	}
	fillRect(screen, entity.Rect{X: eyeX, Y: e.Y + 6, W: 6, H: 6}, colorEye)
}

// drawPlayer flashes the player while invulnerable
func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.session.Player()
	if player == nil {
		return
	}
	if player.InvulnerableFrames > 0 && (player.InvulnerableFrames/4)%2 == 0 {
		return
	}

	clr := color.Color(colorPlayer)
	if player.HasStar() {
		clr = starColors[(player.StarFrames/4)%len(starColors)]
	}
	fillRect(screen, player.Rect(), clr)

	eyeX := player.X + player.W - 10
	if !player.FacingRight {
		eyeX = player.X + 4
	}
	fillRect(screen, entity.Rect{X: eyeX, Y: player.Y + 8, W: 6, H: 6}, colorEye)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	player := p.session.Player()
	level := p.session.Level()
	if player == nil || level == nil {
		return
	}

	fillRect(screen, entity.Rect{X: 0, Y: 0, W: float64(p.screenW), H: 34}, colorHUDBar)

	scene.DrawText(screen, fmt.Sprintf("SCORE %06d", player.Score), 12, 8, 1.5, colorHUD)
	scene.DrawText(screen, fmt.Sprintf("COINS x%02d", player.Coins), 210, 8, 1.5, colorGold)
	scene.DrawText(screen, fmt.Sprintf("LIVES %d", player.Lives), 380, 8, 1.5, colorHUD)
	scene.DrawText(screen,
		fmt.Sprintf("LEVEL %d/%d %s", level.Index+1, p.session.LevelCount(), level.Name),
		510, 8, 1.5, colorHUD)

	if p.recorder != nil && p.recorder.IsRecording() {
		scene.DrawText(screen, "REC", float64(p.screenW)-40, 40, 1.5, colorDanger)
	}
}

// drawLevelStats shows what is left to collect and stomp on this level
func (p *Playing) drawLevelStats(screen *ebiten.Image) {
	level := p.session.Level()
	if level == nil {
		return
	}
	scene.DrawTextCentered(screen,
		fmt.Sprintf("COINS LEFT %d    ENEMIES LEFT %d", level.CoinsRemaining(), level.EnemiesAlive()),
		float64(p.screenW)/2, float64(p.screenH)*3/4, 1.5, colorHUD)
}

func (p *Playing) drawDim(screen *ebiten.Image) {
	fillRect(screen, entity.Rect{W: float64(p.screenW), H: float64(p.screenH)}, colorDim)
}

func (p *Playing) drawBanner(screen *ebiten.Image, title string, clr color.Color) {
	cx := float64(p.screenW) / 2
	cy := float64(p.screenH) / 2

	scene.DrawTextCentered(screen, title, cx, cy-60, 4, clr)

	score := 0
	if player := p.session.Player(); player != nil {
		score = player.Score
	}
	scene.DrawTextCentered(screen, fmt.Sprintf("FINAL SCORE %d", score), cx, cy+10, 2, colorHUD)
	scene.DrawTextCentered(screen, "R - play again    ESC - main menu", cx, cy+50, 1.5, colorSubtitle)
}
