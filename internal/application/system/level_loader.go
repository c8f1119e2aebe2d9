package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/pipehop/internal/domain/entity"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
)

// ErrInvalidLevel is wrapped by every level validation failure
var ErrInvalidLevel = errors.New("invalid level")

// LoadLevel converts a LevelConfig into a fresh Level entity.
// Every call returns new enemies and collectibles, so reloading a level
// resets its per-run state.
func LoadLevel(cfg *config.LevelConfig, physics *config.PhysicsConfig, index int) (*entity.Level, error) {
	if len(cfg.Platforms) == 0 {
		return nil, fmt.Errorf("%w %s: no platforms", ErrInvalidLevel, cfg.ID)
	}
	if cfg.Goal.W <= 0 || cfg.Goal.H <= 0 {
		return nil, fmt.Errorf("%w %s: goal has no area", ErrInvalidLevel, cfg.ID)
	}

	level := &entity.Level{
		ID:     cfg.ID,
		Name:   cfg.Name,
		Index:  index,
		SpawnX: cfg.Spawn.X,
		SpawnY: cfg.Spawn.Y,
		Goal: entity.Goal{Rect: entity.Rect{
			X: cfg.Goal.X, Y: cfg.Goal.Y, W: cfg.Goal.W, H: cfg.Goal.H,
		}},
	}

	spawn := entity.Rect{X: cfg.Spawn.X, Y: cfg.Spawn.Y, W: physics.Player.Width, H: physics.Player.Height}

	level.Platforms = make([]entity.Platform, 0, len(cfg.Platforms))
	for i, pc := range cfg.Platforms {
		p := entity.Platform{
			Rect: entity.Rect{X: pc.X, Y: pc.Y, W: pc.W, H: pc.H},
			Kind: entity.ParsePlatformKind(pc.Kind),
		}
		if pc.W <= 0 || pc.H <= 0 {
			return nil, fmt.Errorf("%w %s: platform %d (%s) has no area", ErrInvalidLevel, cfg.ID, i, p.Kind)
		}
		if spawn.Intersects(p.Rect) {
			return nil, fmt.Errorf("%w %s: spawn point overlaps platform %d (%s)", ErrInvalidLevel, cfg.ID, i, p.Kind)
		}
		level.Platforms = append(level.Platforms, p)
	}

	level.Enemies = make([]*entity.Enemy, 0, len(cfg.Enemies))
	for _, ec := range cfg.Enemies {
		speed := ec.Speed
		if speed == 0 {
			speed = physics.Enemy.Speed
		}
		if !ec.Right {
			speed = -speed
		}
		patrolRange := ec.Range
		if patrolRange == 0 {
			patrolRange = physics.Enemy.PatrolRange
		}
		level.Enemies = append(level.Enemies,
			entity.NewEnemy(ec.X, ec.Y, physics.Enemy.Width, physics.Enemy.Height, speed, patrolRange))
	}

	level.Coins = make([]*entity.Coin, 0, len(cfg.Coins))
	for _, cc := range cfg.Coins {
		level.Coins = append(level.Coins, entity.NewCoin(cc.X, cc.Y, physics.Items.CoinSize))
	}

	level.PowerUps = make([]*entity.PowerUp, 0, len(cfg.PowerUps))
	for i, pc := range cfg.PowerUps {
		kind, ok := entity.ParsePowerUpKind(pc.Kind)
		if !ok {
			return nil, fmt.Errorf("%w %s: power-up %d has unknown kind %q", ErrInvalidLevel, cfg.ID, i, pc.Kind)
		}
		level.PowerUps = append(level.PowerUps, entity.NewPowerUp(pc.X, pc.Y, physics.Items.PowerUpSize, kind))
	}

	return level, nil
}
