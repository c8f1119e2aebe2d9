package system

import (
	"github.com/younwookim/pipehop/internal/domain/entity"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
)

// InteractionResult reports what the player touched this frame.
// Collection and stomps are applied by Check; damage and the goal are
// left to the caller because they change the game state.
type InteractionResult struct {
	CoinsCollected    int
	PowerUpsCollected int
	EnemiesDefeated   int
	Damaged           bool
	ReachedGoal       bool
}

// InteractionSystem checks the player against every collectible, enemy
// and the goal.
type InteractionSystem struct {
	config *config.PhysicsConfig
	level  *entity.Level
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(cfg *config.PhysicsConfig, level *entity.Level) *InteractionSystem {
	return &InteractionSystem{
		config: cfg,
		level:  level,
	}
}

// Check runs all overlap tests. prevBottom is the player's bottom edge
// before this frame's movement and is used to tell stomps from side hits.
func (s *InteractionSystem) Check(player *entity.Player, prevBottom float64) InteractionResult {
	var res InteractionResult
	pr := player.Rect()

	for _, coin := range s.level.Coins {
		if coin.Collected || !pr.Intersects(coin.Rect) {
			continue
		}
		if coin.Collect() {
			player.Score += s.config.Scoring.Coin
			player.Coins++
			res.CoinsCollected++
		}
	}

	for _, pu := range s.level.PowerUps {
		if pu.Collected || !pr.Intersects(pu.Rect) {
			continue
		}
		if pu.Collect() {
			player.Score += s.config.Scoring.PowerUp
			s.applyPowerUp(player, pu.Kind)
			res.PowerUpsCollected++
		}
	}

	for _, enemy := range s.level.Enemies {
		if !enemy.Alive || !pr.Intersects(enemy.Rect()) {
			continue
		}
		switch {
		case s.isStomp(player, enemy, prevBottom):
			enemy.Defeat()
			player.Score += s.config.Scoring.Stomp
			player.VY = -s.config.Player.StompBounce
			res.EnemiesDefeated++
		case player.HasStar():
			enemy.Defeat()
			player.Score += s.config.Scoring.Stomp
			res.EnemiesDefeated++
		default:
			res.Damaged = true
		}
	}

	if pr.Intersects(s.level.Goal.Rect) {
		res.ReachedGoal = true
	}

	return res
}

// isStomp reports whether the player came down onto the enemy from above
func (s *InteractionSystem) isStomp(player *entity.Player, enemy *entity.Enemy, prevBottom float64) bool {
	descending := player.Rect().Bottom() > prevBottom
	fromAbove := prevBottom <= enemy.Y+s.config.Player.StompTolerance
	return descending && fromAbove
}

func (s *InteractionSystem) applyPowerUp(player *entity.Player, kind entity.PowerUpKind) {
	switch kind {
	case entity.PowerUpLife:
		player.Lives++
	case entity.PowerUpStar:
		player.StarFrames = s.config.Player.StarFrames
	}
}
