package entity

// Rect is an axis-aligned bounding box in pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports whether r and o overlap.
// Rectangles that only share an edge do not intersect, so a body resting
// on a platform (Bottom == platform.Y) is not colliding with it.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// PlatformKind is a cosmetic tag; it has no effect on collision.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformBrick
	PlatformBlock
	PlatformPipe
)

// ParsePlatformKind maps a config tag to a kind. Unknown tags are ground.
func ParsePlatformKind(s string) PlatformKind {
	switch s {
	case "brick":
		return PlatformBrick
	case "block":
		return PlatformBlock
	case "pipe":
		return PlatformPipe
	default:
		return PlatformGround
	}
}

// String returns the config tag for the kind
func (k PlatformKind) String() string {
	switch k {
	case PlatformBrick:
		return "brick"
	case PlatformBlock:
		return "block"
	case PlatformPipe:
		return "pipe"
	default:
		return "ground"
	}
}

// Platform is a static solid rectangle. Immutable after level setup.
type Platform struct {
	Rect
	Kind PlatformKind
}

// Level holds one level's runtime entities.
// Platforms never change; enemies and collectibles carry per-run state
// and are rebuilt from config each time the level is set up.
type Level struct {
	ID     string
	Name   string
	Index  int
	SpawnX float64
	SpawnY float64

	Platforms []Platform
	Enemies   []*Enemy
	Coins     []*Coin
	PowerUps  []*PowerUp
	Goal      Goal
}

// CoinsRemaining returns the number of uncollected coins
func (l *Level) CoinsRemaining() int {
	n := 0
	for _, c := range l.Coins {
		if !c.Collected {
			n++
		}
	}
	return n
}

// EnemiesAlive returns the number of enemies still patrolling
func (l *Level) EnemiesAlive() int {
	n := 0
	for _, e := range l.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
