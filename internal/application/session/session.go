// Package session runs one play session: the game state machine, the
// current level and the player.
//
// A Session is driven by exactly one system.InputState per frame and has no
// dependency on the window, so the interactive game and headless replay run
// the same simulation.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/pipehop/internal/application/state"
	"github.com/younwookim/pipehop/internal/application/system"
	"github.com/younwookim/pipehop/internal/domain/entity"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
)

// ErrQuit is returned by Update when the player quits from the menu.
var ErrQuit = errors.New("quit requested")

// Session holds all mutable game state.
type Session struct {
	cfg    *config.GameConfig
	logger *log.Logger

	state      state.GameState
	startLevel int
	levelIndex int
	level      *entity.Level
	player     *entity.Player
	frame      int

	input        *system.InputSystem
	physics      *system.PhysicsSystem
	enemies      *system.EnemySystem
	interactions *system.InteractionSystem

	// OnStateChange, if set, is called after every transition.
	OnStateChange func(from, to state.GameState)
}

// New validates every level in cfg and returns a session sitting in the menu.
// A nil logger discards output.
func New(cfg *config.GameConfig, logger *log.Logger) (*Session, error) {
	if cfg == nil || cfg.Physics == nil {
		return nil, errors.New("session: physics config is required")
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		cfg:    cfg,
		logger: logger,
		state:  state.StateMenu,
		input:  system.NewInputSystem(cfg.Physics),
	}, nil
}

func validate(cfg *config.GameConfig) error {
	if err := cfg.Physics.Validate(); err != nil {
		return err
	}
	if len(cfg.Levels) == 0 {
		return config.ErrNoLevels
	}
	for i, lc := range cfg.Levels {
		if _, err := system.LoadLevel(lc, cfg.Physics, i); err != nil {
			return fmt.Errorf("validate levels: %w", err)
		}
	}
	return nil
}

// SetStartLevel chooses the level (0-based) that new runs begin on.
func (s *Session) SetStartLevel(index int) error {
	if index < 0 || index >= len(s.cfg.Levels) {
		return fmt.Errorf("start level %d out of range [1, %d]", index+1, len(s.cfg.Levels))
	}
	s.startLevel = index
	return nil
}

// SetPhysics swaps in a new physics config, keeping the current level's
// entities. The levels are revalidated first; on error nothing changes.
func (s *Session) SetPhysics(p *config.PhysicsConfig) error {
	if p == nil {
		return errors.New("session: physics config is required")
	}
	next := &config.GameConfig{Physics: p, Levels: s.cfg.Levels}
	if err := validate(next); err != nil {
		return err
	}
	s.cfg = next
	s.input = system.NewInputSystem(p)
	if s.level != nil {
		s.bindSystems()
	}
	s.logger.Info("physics reloaded", "gravity", p.Physics.Gravity, "jumpSpeed", p.Player.JumpSpeed)
	return nil
}

// Update advances the session by one frame of input.
// Events that have no transition in the current state are ignored.
func (s *Session) Update(in system.InputState) error {
	switch s.state {
	case state.StateMenu:
		if in.Pause {
			return ErrQuit
		}
		if in.Start {
			return s.NewRun()
		}

	case state.StatePlaying:
		if in.Pause {
			s.setState(state.StatePaused)
			return nil
		}
		return s.step(in)

	case state.StatePaused:
		switch {
		case in.Pause:
			s.setState(state.StatePlaying)
		case in.Restart:
			return s.NewRun()
		case in.Menu:
			s.setState(state.StateMenu)
		}

	case state.StateGameOver, state.StateVictory:
		switch {
		case in.Restart:
			return s.NewRun()
		case in.Pause, in.Menu:
			s.setState(state.StateMenu)
		}
	}
	return nil
}

// NewRun starts a fresh run: full lives, zero score, start level.
func (s *Session) NewRun() error {
	pc := s.cfg.Physics.Player
	s.player = entity.NewPlayer(0, 0, pc.Width, pc.Height, pc.Lives)
	s.frame = 0
	if err := s.setupLevel(s.startLevel); err != nil {
		return err
	}
	s.setState(state.StatePlaying)
	return nil
}

// step simulates one PLAYING frame.
func (s *Session) step(in system.InputState) error {
	s.frame++
	s.player.Tick()
	prevBottom := s.player.Rect().Bottom()

	s.input.UpdatePlayer(s.player, in)
	s.physics.Update(s.player)
	s.enemies.Update()

	if s.physics.FellOut(s.player) {
		s.hurt(true)
		return nil
	}

	res := s.interactions.Check(s.player, prevBottom)
	if res.Damaged && s.hurt(false) {
		return nil
	}
	if res.ReachedGoal {
		return s.completeLevel()
	}
	return nil
}

// hurt applies one hit and reports whether a life was lost. A fall always
// respawns the player, even when the hit itself is ignored.
func (s *Session) hurt(fell bool) bool {
	damaged := s.player.TakeDamage(s.cfg.Physics.Player.InvulnerabilityFrames)
	if damaged || fell {
		s.player.Respawn(s.level.SpawnX, s.level.SpawnY)
	}
	if !damaged {
		return false
	}

	s.logger.Debug("player hit", "lives", s.player.Lives, "fell", fell, "frame", s.frame)
	if s.player.IsDead() {
		s.setState(state.StateGameOver)
	}
	return true
}

func (s *Session) completeLevel() error {
	s.player.Score += s.cfg.Physics.Scoring.Goal
	s.logger.Info("level complete",
		"level", s.level.ID, "score", s.player.Score, "frame", s.frame,
		"coinsLeft", s.level.CoinsRemaining(), "enemiesLeft", s.level.EnemiesAlive())

	if s.levelIndex == len(s.cfg.Levels)-1 {
		s.setState(state.StateVictory)
		return nil
	}
	return s.setupLevel(s.levelIndex + 1)
}

// setupLevel loads a fresh copy of the level and respawns the player.
// Lives, score and coin count carry over.
func (s *Session) setupLevel(index int) error {
	lvl, err := system.LoadLevel(s.cfg.Levels[index], s.cfg.Physics, index)
	if err != nil {
		return fmt.Errorf("setup level %d: %w", index+1, err)
	}
	s.levelIndex = index
	s.level = lvl
	s.bindSystems()
	s.player.Respawn(lvl.SpawnX, lvl.SpawnY)

	s.logger.Debug("level loaded", "id", lvl.ID, "index", index+1,
		"enemies", len(lvl.Enemies), "coins", len(lvl.Coins))
	return nil
}

func (s *Session) bindSystems() {
	s.physics = system.NewPhysicsSystem(s.cfg.Physics, s.level)
	s.enemies = system.NewEnemySystem(s.cfg.Physics, s.level)
	s.interactions = system.NewInteractionSystem(s.cfg.Physics, s.level)
}

func (s *Session) setState(to state.GameState) {
	from := s.state
	if from == to {
		return
	}
	s.state = to
	s.logger.Info("state change", "from", from, "to", to, "level", s.levelIndex+1, "frame", s.frame)
	if s.OnStateChange != nil {
		s.OnStateChange(from, to)
	}
}

// State returns the current game state
func (s *Session) State() state.GameState { return s.state }

// Player returns the player, or nil before the first run
func (s *Session) Player() *entity.Player { return s.player }

// Level returns the current level, or nil before the first run
func (s *Session) Level() *entity.Level { return s.level }

// LevelIndex returns the 0-based index of the current level
func (s *Session) LevelIndex() int { return s.levelIndex }

// StartLevel returns the 0-based index new runs begin on
func (s *Session) StartLevel() int { return s.startLevel }

// LevelCount returns the number of levels in a run
func (s *Session) LevelCount() int { return len(s.cfg.Levels) }

// LevelIDs returns the IDs of all levels in play order
func (s *Session) LevelIDs() []string {
	ids := make([]string, len(s.cfg.Levels))
	for i, lc := range s.cfg.Levels {
		ids[i] = lc.ID
	}
	return ids
}

// Frame returns the number of PLAYING frames simulated in this run
func (s *Session) Frame() int { return s.frame }

// Physics returns the active physics config
func (s *Session) Physics() *config.PhysicsConfig { return s.cfg.Physics }
