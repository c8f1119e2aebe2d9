package entity

// PowerUpKind selects what a power-up grants
type PowerUpKind int

const (
	PowerUpLife PowerUpKind = iota
	PowerUpStar
)

// String returns the config tag for the kind
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpLife:
		return "life"
	case PowerUpStar:
		return "star"
	default:
		return "unknown"
	}
}

// ParsePowerUpKind maps a config tag to a kind
func ParsePowerUpKind(s string) (PowerUpKind, bool) {
	switch s {
	case "life":
		return PowerUpLife, true
	case "star":
		return PowerUpStar, true
	default:
		return 0, false
	}
}

// Coin is a collectible worth points
type Coin struct {
	Rect
	Collected bool
}

// NewCoin creates an uncollected coin
func NewCoin(x, y, size float64) *Coin {
	return &Coin{Rect: Rect{X: x, Y: y, W: size, H: size}}
}

// Collect marks the coin collected. Returns false if it already was.
func (c *Coin) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	return true
}

// PowerUp is a collectible that grants a life or a star
type PowerUp struct {
	Rect
	Kind      PowerUpKind
	Collected bool
}

// NewPowerUp creates an uncollected power-up
func NewPowerUp(x, y, size float64, kind PowerUpKind) *PowerUp {
	return &PowerUp{Rect: Rect{X: x, Y: y, W: size, H: size}, Kind: kind}
}

// Collect marks the power-up collected. Returns false if it already was.
func (p *PowerUp) Collect() bool {
	if p.Collected {
		return false
	}
	p.Collected = true
	return true
}

// Goal ends the level when the player touches it
type Goal struct {
	Rect
}
