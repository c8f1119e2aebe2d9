package entity

// Enemy represents a patrolling enemy
type Enemy struct {
	X, Y  float64
	W, H  float64
	VX    float64
	Alive bool

	// Patrol
	PatrolStartX float64
	PatrolRange  float64
}

// NewEnemy creates a new enemy patrolling around its spawn X.
// A negative speed starts it walking left.
func NewEnemy(x, y, w, h, speed, patrolRange float64) *Enemy {
	return &Enemy{
		X:            x,
		Y:            y,
		W:            w,
		H:            h,
		VX:           speed,
		Alive:        true,
		PatrolStartX: x,
		PatrolRange:  patrolRange,
	}
}

// Rect returns the enemy's bounding box
func (e *Enemy) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// FacingRight reports the walking direction
func (e *Enemy) FacingRight() bool {
	return e.VX > 0
}

// Defeat removes the enemy from play. Returns false if it was already gone.
func (e *Enemy) Defeat() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	return true
}
