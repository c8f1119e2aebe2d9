package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputSystem(t *testing.T) {
	cfg := createTestPhysicsConfig()

	sys := NewInputSystem(cfg)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
}

func TestInputSystem_HorizontalMovement(t *testing.T) {
	tests := []struct {
		name        string
		input       InputState
		expectVX    float64
		expectFaceR bool
	}{
		{"no input", InputState{}, 0, true},
		{"left", InputState{Left: true}, -5, false},
		{"right", InputState{Right: true}, 5, true},
		{"both cancel", InputState{Left: true, Right: true}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInputSystem(createTestPhysicsConfig())
			player := createTestPlayer(100, 514)

			sys.UpdatePlayer(player, tt.input)

			assert.Equal(t, tt.expectVX, player.VX)
			assert.Equal(t, tt.expectFaceR, player.FacingRight)
		})
	}
}

func TestInputSystem_VelocityIsSetNotAccumulated(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())
	player := createTestPlayer(100, 514)

	for i := 0; i < 10; i++ {
		sys.UpdatePlayer(player, InputState{Right: true})
	}
	assert.Equal(t, 5.0, player.VX)

	sys.UpdatePlayer(player, InputState{})
	assert.Equal(t, 0.0, player.VX)
	assert.True(t, player.FacingRight, "facing is kept when standing still")
}

func TestInputSystem_Jump(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())

	t.Run("grounded", func(t *testing.T) {
		player := createTestPlayer(100, 514)
		player.OnGround = true

		sys.UpdatePlayer(player, InputState{Jump: true})

		assert.Equal(t, -15.0, player.VY)
		assert.False(t, player.OnGround)
	})

	t.Run("airborne", func(t *testing.T) {
		player := createTestPlayer(100, 300)
		player.VY = 3

		sys.UpdatePlayer(player, InputState{Jump: true})

		assert.Equal(t, 3.0, player.VY)
	})
}

func TestInputState_Merge(t *testing.T) {
	a := InputState{Left: true, Pause: true}
	b := InputState{Jump: true, Restart: true}

	m := a.Merge(b)

	assert.Equal(t, InputState{Left: true, Jump: true, Pause: true, Restart: true}, m)
	assert.Equal(t, a, a.Merge(InputState{}))
}
