package config

import (
	"errors"
	"fmt"
)

// ErrInvalidPhysics is wrapped by every physics.yaml validation failure
var ErrInvalidPhysics = errors.New("invalid physics config")

// Validate checks the values the simulation divides by, moves by or counts
// down from. A zero PhysicsConfig, such as an empty physics.yaml, fails.
func (c *PhysicsConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"display.screenWidth", c.Display.ScreenWidth > 0},
		{"display.screenHeight", c.Display.ScreenHeight > 0},
		{"display.framerate", c.Display.Framerate > 0},
		{"physics.gravity", c.Physics.Gravity > 0},
		{"physics.maxFallSpeed", c.Physics.MaxFallSpeed > 0},
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"player.moveSpeed", c.Player.MoveSpeed > 0},
		{"player.jumpSpeed", c.Player.JumpSpeed > 0},
		{"player.lives", c.Player.Lives >= 1},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidPhysics, chk.name)
		}
	}
	return nil
}
