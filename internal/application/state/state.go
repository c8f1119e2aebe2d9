package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	// StateLevelComplete is reserved; levels advance directly within
	// StatePlaying and nothing transitions here.
	StateLevelComplete
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateLevelComplete:
		return "LevelComplete"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true for states that only an explicit restart or a
// return to the menu can leave.
func (s GameState) IsTerminal() bool {
	return s == StateGameOver || s == StateVictory
}
