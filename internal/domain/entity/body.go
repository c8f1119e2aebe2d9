package entity

// Body represents the physical body of an entity.
// Position is the top-left corner in pixels; velocity is pixels per frame.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
	FacingRight bool
}

// Rect returns the body's bounding box
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// SetPos moves the body without touching its velocity
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}

// ResetMotion clears velocity and contact flags
func (b *Body) ResetMotion() {
	b.VX = 0
	b.VY = 0
	b.OnGround = false
	b.OnCeiling = false
	b.OnWallLeft = false
	b.OnWallRight = false
}

// Player represents the player entity
type Player struct {
	Body

	Lives int
	Score int
	Coins int

	// Timers, in frames
	InvulnerableFrames int
	StarFrames         int
}

// NewPlayer creates a new player at the given spawn point.
func NewPlayer(x, y, w, h float64, lives int) *Player {
	return &Player{
		Body: Body{
			X:           x,
			Y:           y,
			W:           w,
			H:           h,
			FacingRight: true,
		},
		Lives: lives,
	}
}

// IsInvincible returns true if damage is currently ignored
func (p *Player) IsInvincible() bool {
	return p.InvulnerableFrames > 0 || p.StarFrames > 0
}

// HasStar returns true while a star power-up is active
func (p *Player) HasStar() bool {
	return p.StarFrames > 0
}

// Tick advances the player's timers by one frame
func (p *Player) Tick() {
	if p.InvulnerableFrames > 0 {
		p.InvulnerableFrames--
	}
	if p.StarFrames > 0 {
		p.StarFrames--
	}
}

// TakeDamage removes a life and opens an invulnerability window of the
// given length. Returns false, changing nothing, while invincible.
func (p *Player) TakeDamage(window int) bool {
	if p.IsInvincible() {
		return false
	}
	p.Lives--
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.InvulnerableFrames = window
	return true
}

// IsDead returns true once all lives are spent
func (p *Player) IsDead() bool {
	return p.Lives <= 0
}

// Respawn places the player at the spawn point at rest.
func (p *Player) Respawn(x, y float64) {
	p.SetPos(x, y)
	p.ResetMotion()
	p.FacingRight = true
}
