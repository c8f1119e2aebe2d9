package system

import (
	"math"

	"github.com/younwookim/pipehop/internal/domain/entity"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
)

// EnemySystem advances enemy patrols
type EnemySystem struct {
	config *config.PhysicsConfig
	level  *entity.Level
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.PhysicsConfig, level *entity.Level) *EnemySystem {
	return &EnemySystem{
		config: cfg,
		level:  level,
	}
}

// Update advances every living enemy by one frame
func (s *EnemySystem) Update() {
	for _, enemy := range s.level.Enemies {
		if !enemy.Alive {
			continue
		}
		s.updatePatrol(enemy)
		s.snapToGround(enemy)

		if enemy.Y > float64(s.config.Display.ScreenHeight) {
			enemy.Defeat()
		}
	}
}

// updatePatrol walks at constant speed and turns around once the
// distance from the spawn point exceeds the patrol range.
func (s *EnemySystem) updatePatrol(enemy *entity.Enemy) {
	enemy.X += enemy.VX

	if math.Abs(enemy.X-enemy.PatrolStartX) > enemy.PatrolRange {
		enemy.VX = -enemy.VX
	}
}

// snapToGround drops the enemy by a fixed step and rests it on top of the
// first platform it overlaps. No gravity acceleration.
func (s *EnemySystem) snapToGround(enemy *entity.Enemy) {
	enemy.Y += s.config.Enemy.SnapStep

	for _, p := range s.level.Platforms {
		if enemy.Rect().Intersects(p.Rect) {
			enemy.Y = p.Y - enemy.H
			return
		}
	}
}
