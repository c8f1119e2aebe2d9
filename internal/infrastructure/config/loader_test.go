package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.8, cfg.Physics.Gravity)
	assert.Equal(t, 15.0, cfg.Physics.MaxFallSpeed)
	assert.Equal(t, 3, cfg.Player.Lives)
	assert.Equal(t, 120, cfg.Player.InvulnerabilityFrames)
	assert.Equal(t, 120.0, cfg.Enemy.PatrolRange)
	assert.Equal(t, 100, cfg.Scoring.Coin)
}

func TestLoader_ListLevels(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	ids, err := loader.ListLevels()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"01-green-hills",
		"02-brick-bridges",
		"03-pipe-maze",
		"04-sky-fortress",
	}, ids)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadLevel("01-green-hills")
	require.NoError(t, err)

	assert.Equal(t, "01-green-hills", cfg.ID)
	assert.Equal(t, "Green Hills", cfg.Name)
	assert.Equal(t, 40.0, cfg.Spawn.X)
	assert.Equal(t, 500.0, cfg.Spawn.Y)
	require.Len(t, cfg.Platforms, 5)
	assert.Equal(t, "ground", cfg.Platforms[0].Kind)
	assert.Equal(t, 360.0, cfg.Platforms[0].W)
	assert.Equal(t, "pipe", cfg.Platforms[3].Kind)
	assert.Len(t, cfg.Enemies, 1)
	assert.Len(t, cfg.Coins, 4)
	require.Len(t, cfg.PowerUps, 1)
	assert.Equal(t, "life", cfg.PowerUps[0].Kind)
	assert.Equal(t, 160.0, cfg.Goal.H)
}

func TestLoader_LoadLevel_EnemyOverrides(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadLevel("02-brick-bridges")
	require.NoError(t, err)

	require.Len(t, cfg.Enemies, 2)
	assert.Equal(t, 50.0, cfg.Enemies[0].Range)
	assert.False(t, cfg.Enemies[0].Right)
	assert.True(t, cfg.Enemies[1].Right)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.Len(t, cfg.Levels, 4)
	assert.Equal(t, "Sky Fortress", cfg.Levels[3].Name)
}

// minimalPhysicsYAML holds only the values Validate requires
const minimalPhysicsYAML = `
display: {screenWidth: 800, screenHeight: 600, framerate: 60}
physics: {gravity: 1, maxFallSpeed: 10}
player: {width: 20, height: 30, moveSpeed: 4, jumpSpeed: 12, lives: 1}
`

func TestLoader_NoLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml": &fstest.MapFile{Data: []byte(minimalPhysicsYAML)},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadAll()
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestLoader_LevelNameDefaultsToID(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/09-bare.yaml": &fstest.MapFile{Data: []byte("spawn: {x: 1, y: 2}\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadLevel("09-bare")
	require.NoError(t, err)
	assert.Equal(t, "09-bare", cfg.Name)
	assert.Equal(t, 2.0, cfg.Spawn.Y)
}

func TestLoader_BadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml": &fstest.MapFile{Data: []byte("display: [not, a, map")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadPhysics()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "physics.yaml")
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "mem")

	_, err := loader.LoadLevel("nope")
	assert.Error(t, err)
}

func TestLoader_EmptyPhysicsRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml": &fstest.MapFile{Data: []byte("")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadPhysics()
	assert.ErrorIs(t, err, ErrInvalidPhysics)
}

func TestPhysicsConfig_Validate(t *testing.T) {
	valid := func() *PhysicsConfig {
		cfg, err := NewLoader("../../../cmd/game/configs").LoadPhysics()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *PhysicsConfig)
		field  string
	}{
		{"zero screen width", func(c *PhysicsConfig) { c.Display.ScreenWidth = 0 }, "display.screenWidth"},
		{"zero screen height", func(c *PhysicsConfig) { c.Display.ScreenHeight = 0 }, "display.screenHeight"},
		{"zero framerate", func(c *PhysicsConfig) { c.Display.Framerate = 0 }, "display.framerate"},
		{"negative gravity", func(c *PhysicsConfig) { c.Physics.Gravity = -1 }, "physics.gravity"},
		{"zero max fall", func(c *PhysicsConfig) { c.Physics.MaxFallSpeed = 0 }, "physics.maxFallSpeed"},
		{"zero player width", func(c *PhysicsConfig) { c.Player.Width = 0 }, "player.width"},
		{"zero player height", func(c *PhysicsConfig) { c.Player.Height = 0 }, "player.height"},
		{"zero move speed", func(c *PhysicsConfig) { c.Player.MoveSpeed = 0 }, "player.moveSpeed"},
		{"zero jump speed", func(c *PhysicsConfig) { c.Player.JumpSpeed = 0 }, "player.jumpSpeed"},
		{"no lives", func(c *PhysicsConfig) { c.Player.Lives = 0 }, "player.lives"},
	}

	require.NoError(t, valid().Validate())
	assert.ErrorIs(t, (&PhysicsConfig{}).Validate(), ErrInvalidPhysics)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidPhysics)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
