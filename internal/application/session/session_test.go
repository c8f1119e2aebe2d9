package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pipehop/internal/application/state"
	"github.com/younwookim/pipehop/internal/application/system"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
)

func createTestPhysics() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{ScreenWidth: 800, ScreenHeight: 600, Framerate: 60},
		Physics: config.PhysicsSettings{Gravity: 0.8, MaxFallSpeed: 15},
		Player: config.PlayerConfig{
			Width: 28, Height: 36, MoveSpeed: 5, JumpSpeed: 15, Lives: 3,
			InvulnerabilityFrames: 120, StarFrames: 480,
			StompBounce: 9, StompTolerance: 8,
		},
		Enemy:   config.EnemyConfig{Width: 32, Height: 28, Speed: 2, PatrolRange: 120, SnapStep: 5},
		Items:   config.ItemsConfig{CoinSize: 20, PowerUpSize: 28},
		Scoring: config.ScoringConfig{Coin: 100, PowerUp: 500, Stomp: 200, Goal: 1000},
	}
}

var ground = config.PlatformConfig{RectConfig: config.RectConfig{X: 0, Y: 550, W: 800, H: 50}, Kind: "ground"}

// createWalkLevel returns a level whose goal is a short walk right of the spawn,
// with one coin on the way.
func createWalkLevel(id string) *config.LevelConfig {
	return &config.LevelConfig{
		ID:        id,
		Name:      id,
		Spawn:     config.PositionConfig{X: 50, Y: 514},
		Goal:      config.RectConfig{X: 200, Y: 400, W: 20, H: 150},
		Platforms: []config.PlatformConfig{ground},
		Coins:     []config.PositionConfig{{X: 120, Y: 520}},
	}
}

func createTestSession(t *testing.T, levels ...*config.LevelConfig) *Session {
	t.Helper()
	s, err := New(&config.GameConfig{Physics: createTestPhysics(), Levels: levels}, nil)
	require.NoError(t, err)
	return s
}

type transition struct{ from, to state.GameState }

func recordTransitions(s *Session) *[]transition {
	var got []transition
	s.OnStateChange = func(from, to state.GameState) {
		got = append(got, transition{from, to})
	}
	return &got
}

func countTo(ts []transition, to state.GameState) int {
	n := 0
	for _, tr := range ts {
		if tr.to == to {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	t.Run("starts in menu", func(t *testing.T) {
		s := createTestSession(t, createWalkLevel("a"))
		assert.Equal(t, state.StateMenu, s.State())
		assert.Nil(t, s.Player())
		assert.Equal(t, 1, s.LevelCount())
	})

	t.Run("no levels", func(t *testing.T) {
		_, err := New(&config.GameConfig{Physics: createTestPhysics()}, nil)
		assert.ErrorIs(t, err, config.ErrNoLevels)
	})

	t.Run("invalid level", func(t *testing.T) {
		bad := createWalkLevel("bad")
		bad.Platforms = nil
		_, err := New(&config.GameConfig{Physics: createTestPhysics(), Levels: []*config.LevelConfig{bad}}, nil)
		assert.ErrorIs(t, err, system.ErrInvalidLevel)
	})

	t.Run("zero physics", func(t *testing.T) {
		_, err := New(&config.GameConfig{Physics: &config.PhysicsConfig{}, Levels: []*config.LevelConfig{createWalkLevel("a")}}, nil)
		assert.ErrorIs(t, err, config.ErrInvalidPhysics)
	})

	t.Run("nil physics", func(t *testing.T) {
		_, err := New(&config.GameConfig{}, nil)
		assert.Error(t, err)
	})
}

func TestSession_MenuTransitions(t *testing.T) {
	s := createTestSession(t, createWalkLevel("a"))

	require.NoError(t, s.Update(system.InputState{Restart: true}))
	assert.Equal(t, state.StateMenu, s.State(), "restart is ignored in the menu")

	require.NoError(t, s.Update(system.InputState{Start: true}))
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, 3, s.Player().Lives)
	assert.Equal(t, 0, s.Player().Score)
	assert.Equal(t, 50.0, s.Player().X)

	s2 := createTestSession(t, createWalkLevel("a"))
	assert.ErrorIs(t, s2.Update(system.InputState{Pause: true}), ErrQuit)
}

func TestSession_PauseTransitions(t *testing.T) {
	s := createTestSession(t, createWalkLevel("a"))
	require.NoError(t, s.NewRun())

	require.NoError(t, s.Update(system.InputState{Pause: true}))
	assert.Equal(t, state.StatePaused, s.State())

	// No simulation while paused
	x, frame := s.Player().X, s.Frame()
	require.NoError(t, s.Update(system.InputState{Right: true}))
	assert.Equal(t, x, s.Player().X)
	assert.Equal(t, frame, s.Frame())

	require.NoError(t, s.Update(system.InputState{Pause: true}))
	assert.Equal(t, state.StatePlaying, s.State())

	require.NoError(t, s.Update(system.InputState{Pause: true}))
	require.NoError(t, s.Update(system.InputState{Menu: true}))
	assert.Equal(t, state.StateMenu, s.State())
}

func TestSession_PauseRestartStartsNewRun(t *testing.T) {
	s := createTestSession(t, createWalkLevel("a"))
	require.NoError(t, s.NewRun())

	for i := 0; i < 20; i++ {
		require.NoError(t, s.Update(system.InputState{Right: true}))
	}
	require.Equal(t, 100, s.Player().Score)
	require.Equal(t, 0, s.Level().CoinsRemaining())

	require.NoError(t, s.Update(system.InputState{Pause: true}))
	require.NoError(t, s.Update(system.InputState{Restart: true}))

	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, 0, s.Player().Score)
	assert.Equal(t, 1, s.Level().CoinsRemaining())
	assert.Equal(t, 0, s.Frame())
}

func TestSession_GoalAdvancesThenVictoryOnce(t *testing.T) {
	s := createTestSession(t, createWalkLevel("a"), createWalkLevel("b"))
	got := recordTransitions(s)
	require.NoError(t, s.NewRun())

	first := s.Level()
	for i := 0; i < 200 && s.LevelIndex() == 0; i++ {
		require.NoError(t, s.Update(system.InputState{Right: true}))
	}

	require.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, state.StatePlaying, s.State())
	assert.NotSame(t, first, s.Level())
	assert.Equal(t, 1, s.Level().CoinsRemaining(), "entity lists are fresh")
	assert.Equal(t, 50.0, s.Player().X, "player respawned")
	assert.Equal(t, 1100, s.Player().Score, "score carries over")
	assert.Equal(t, 3, s.Player().Lives)

	for i := 0; i < 200; i++ {
		require.NoError(t, s.Update(system.InputState{Right: true}))
	}

	assert.Equal(t, state.StateVictory, s.State())
	assert.Equal(t, 1, countTo(*got, state.StateVictory))
	assert.Equal(t, 2200, s.Player().Score)
	assert.Zero(t, countTo(*got, state.StateLevelComplete))
}

func TestSession_GameOverOnce(t *testing.T) {
	lvl := createWalkLevel("a")
	// Enemy parked on the spawn point: every vulnerable frame costs a life.
	// Zero speed means "use the default", so crawl instead.
	lvl.Enemies = []config.EnemySpawnConfig{{X: 50, Y: 522, Speed: 0.0001, Range: 1000}}
	s := createTestSession(t, lvl)
	got := recordTransitions(s)
	require.NoError(t, s.NewRun())

	var livesAt []int
	for i := 0; i < 400; i++ {
		require.NoError(t, s.Update(system.InputState{}))
		livesAt = append(livesAt, s.Player().Lives)
		if s.Player().Lives > 0 {
			require.Equal(t, state.StatePlaying, s.State(), "frame %d", i+1)
		}
	}

	// Hits land on frames 1, 121 and 241: the 120-frame window blocks the rest
	assert.Equal(t, 2, livesAt[0])
	assert.Equal(t, 2, livesAt[119])
	assert.Equal(t, 1, livesAt[120])
	assert.Equal(t, 1, livesAt[239])
	assert.Equal(t, 0, livesAt[240])

	assert.Equal(t, state.StateGameOver, s.State())
	assert.Equal(t, 1, countTo(*got, state.StateGameOver))
	assert.Equal(t, 241, s.Frame(), "no frames simulated after game over")
}

func TestSession_FallRespawnsWhileInvulnerable(t *testing.T) {
	lvl := createWalkLevel("a")
	lvl.Spawn = config.PositionConfig{X: 400, Y: 100}
	// Ground with a pit under the spawn
	lvl.Platforms = []config.PlatformConfig{
		{RectConfig: config.RectConfig{X: 0, Y: 550, W: 300, H: 50}},
		{RectConfig: config.RectConfig{X: 500, Y: 550, W: 300, H: 50}},
	}
	s := createTestSession(t, lvl)
	require.NoError(t, s.NewRun())

	fell := 0
	for i := 0; i < 100; i++ {
		prevY := s.Player().Y
		require.NoError(t, s.Update(system.InputState{}))
		if s.Player().Y < prevY {
			fell++
		}
	}

	assert.GreaterOrEqual(t, fell, 2, "fell and respawned more than once")
	assert.Equal(t, 2, s.Player().Lives, "only the first fall costs a life")
	assert.Equal(t, state.StatePlaying, s.State())
}

func TestSession_TerminalStateTransitions(t *testing.T) {
	tests := []struct {
		name   string
		input  system.InputState
		expect state.GameState
	}{
		{"restart", system.InputState{Restart: true}, state.StatePlaying},
		{"escape to menu", system.InputState{Pause: true}, state.StateMenu},
		{"start ignored", system.InputState{Start: true}, state.StateVictory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestSession(t, createWalkLevel("a"))
			require.NoError(t, s.NewRun())
			for i := 0; i < 200 && s.State() == state.StatePlaying; i++ {
				require.NoError(t, s.Update(system.InputState{Right: true}))
			}
			require.Equal(t, state.StateVictory, s.State())

			require.NoError(t, s.Update(tt.input))
			assert.Equal(t, tt.expect, s.State())
		})
	}
}

func TestSession_SetStartLevel(t *testing.T) {
	s := createTestSession(t, createWalkLevel("a"), createWalkLevel("b"))

	assert.Error(t, s.SetStartLevel(2))
	assert.Error(t, s.SetStartLevel(-1))
	require.NoError(t, s.SetStartLevel(1))

	require.NoError(t, s.NewRun())
	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, "b", s.Level().ID)
}

func TestSession_SetPhysics(t *testing.T) {
	s := createTestSession(t, createWalkLevel("a"))
	require.NoError(t, s.NewRun())

	faster := createTestPhysics()
	faster.Player.MoveSpeed = 10
	require.NoError(t, s.SetPhysics(faster))

	x := s.Player().X
	require.NoError(t, s.Update(system.InputState{Right: true}))
	assert.Equal(t, x+10, s.Player().X)
	assert.Same(t, faster, s.Physics())

	// A config that makes a level invalid is rejected
	huge := createTestPhysics()
	huge.Player.Height = 100
	assert.ErrorIs(t, s.SetPhysics(huge), system.ErrInvalidLevel)
	assert.Same(t, faster, s.Physics())

	// An empty physics.yaml decodes to the zero config
	assert.ErrorIs(t, s.SetPhysics(&config.PhysicsConfig{}), config.ErrInvalidPhysics)
	assert.Error(t, s.SetPhysics(nil))
	assert.Same(t, faster, s.Physics())

	// The run continues under the old physics
	lives := s.Player().Lives
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Update(system.InputState{}))
	}
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, lives, s.Player().Lives)
}
