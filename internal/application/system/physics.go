package system

import (
	"github.com/younwookim/pipehop/internal/domain/entity"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
)

// PhysicsSystem moves the player and resolves collisions against the
// level's platforms, one axis at a time.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	level  *entity.Level
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		level:  level,
	}
}

// Update applies one frame of physics to the player
func (s *PhysicsSystem) Update(player *entity.Player) {
	s.applyGravity(player)
	s.applyMovement(player)
}

// FellOut reports whether the player has dropped below the screen
func (s *PhysicsSystem) FellOut(player *entity.Player) bool {
	return player.Y > float64(s.config.Display.ScreenHeight)
}

// applyGravity accelerates the player downward, capped at max fall speed
func (s *PhysicsSystem) applyGravity(player *entity.Player) {
	player.VY += s.config.Physics.Gravity
	if player.VY > s.config.Physics.MaxFallSpeed {
		player.VY = s.config.Physics.MaxFallSpeed
	}
}

// applyMovement moves X then Y, resolving after each axis
func (s *PhysicsSystem) applyMovement(player *entity.Player) {
	player.OnGround = false
	player.OnCeiling = false
	player.OnWallLeft = false
	player.OnWallRight = false

	s.moveX(player)
	s.clampToScreen(player)
	s.moveY(player)
}

// moveX moves the player horizontally and clamps it to the edge of any
// platform it ends up inside, on the side it came from.
func (s *PhysicsSystem) moveX(player *entity.Player) {
	if player.VX == 0 {
		return
	}

	player.X += player.VX
	for _, p := range s.level.Platforms {
		if !player.Rect().Intersects(p.Rect) {
			continue
		}
		if player.VX > 0 {
			player.X = p.X - player.W
			player.OnWallRight = true
		} else {
			player.X = p.Right()
			player.OnWallLeft = true
		}
	}
	if player.OnWallLeft || player.OnWallRight {
		player.VX = 0
	}
}

// moveY moves the player vertically; landing zeroes VY and sets OnGround,
// a head bump zeroes VY and sets OnCeiling.
func (s *PhysicsSystem) moveY(player *entity.Player) {
	if player.VY == 0 {
		return
	}

	falling := player.VY > 0
	player.Y += player.VY
	for _, p := range s.level.Platforms {
		if !player.Rect().Intersects(p.Rect) {
			continue
		}
		if falling {
			player.Y = p.Y - player.H
			player.OnGround = true
		} else {
			player.Y = p.Bottom()
			player.OnCeiling = true
		}
	}
	if player.OnGround || player.OnCeiling {
		player.VY = 0
	}
}

// clampToScreen keeps the player inside the screen horizontally
func (s *PhysicsSystem) clampToScreen(player *entity.Player) {
	maxX := float64(s.config.Display.ScreenWidth) - player.W
	if player.X < 0 {
		player.X = 0
		player.OnWallLeft = true
	} else if player.X > maxX {
		player.X = maxX
		player.OnWallRight = true
	}
}
