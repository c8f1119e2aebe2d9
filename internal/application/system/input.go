package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/pipehop/internal/domain/entity"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
)

// InputSystem handles player input
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds one frame of input.
// Movement fields are held keys; the rest are just-pressed events.
type InputState struct {
	Left  bool
	Right bool
	Jump  bool

	Start   bool // Enter / Space
	Pause   bool // Escape
	Restart bool // R
	Menu    bool // M
}

// Merge returns the union of two input states
func (in InputState) Merge(o InputState) InputState {
	return InputState{
		Left:    in.Left || o.Left,
		Right:   in.Right || o.Right,
		Jump:    in.Jump || o.Jump,
		Start:   in.Start || o.Start,
		Pause:   in.Pause || o.Pause,
		Restart: in.Restart || o.Restart,
		Menu:    in.Menu || o.Menu,
	}
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump: ebiten.IsKeyPressed(ebiten.KeySpace) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeyW),
		Start:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Menu:    inpututil.IsKeyJustPressed(ebiten.KeyM),
	}
}

// UpdatePlayer sets the player's velocity from input.
// Horizontal velocity is set directly; there is no acceleration model.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState) {
	s.handleMovement(player, input)
	s.handleJump(player, input)
}

// handleMovement handles horizontal movement
func (s *InputSystem) handleMovement(player *entity.Player, input InputState) {
	speed := s.config.Player.MoveSpeed

	player.VX = 0
	if input.Left {
		player.VX -= speed
	}
	if input.Right {
		player.VX += speed
	}

	if player.VX > 0 {
		player.FacingRight = true
	} else if player.VX < 0 {
		player.FacingRight = false
	}
}

// handleJump starts a jump when grounded
func (s *InputSystem) handleJump(player *entity.Player, input InputState) {
	if input.Jump && player.OnGround {
		player.VY = -s.config.Player.JumpSpeed
		player.OnGround = false
	}
}
