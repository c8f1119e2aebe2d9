package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/pipehop/internal/application/session"
	"github.com/younwookim/pipehop/internal/application/state"
)

// ErrLevelMismatch is returned when a recording was made against a
// different level set than the one loaded.
var ErrLevelMismatch = errors.New("recording does not match loaded levels")

// Result summarizes where a replayed run ended
type Result struct {
	State  state.GameState
	Level  int // 1-based
	Lives  int
	Score  int
	Coins  int
	Frames int // input frames consumed
}

// Run plays data through s from a fresh run. Playback stops when the
// input runs out or the session returns to the menu.
func Run(s *session.Session, data *ReplayData) (Result, error) {
	if err := checkLevels(data.Levels, s.LevelIDs()); err != nil {
		return Result{}, err
	}

	r := NewReplayer(*data)
	if err := s.SetStartLevel(r.StartLevel()); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	if err := s.NewRun(); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	for s.State() != state.StateMenu {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		if err := s.Update(in); err != nil {
			return Result{}, fmt.Errorf("replay frame %d: %w", r.CurrentFrame()-1, err)
		}
	}

	p := s.Player()
	return Result{
		State:  s.State(),
		Level:  s.LevelIndex() + 1,
		Lives:  p.Lives,
		Score:  p.Score,
		Coins:  p.Coins,
		Frames: r.CurrentFrame(),
	}, nil
}

// checkLevels compares the recorded level IDs with the loaded ones in play
// order. Recordings without level IDs are accepted as is.
func checkLevels(recorded, loaded []string) error {
	if len(recorded) == 0 {
		return nil
	}
	if len(recorded) != len(loaded) {
		return fmt.Errorf("%w: recorded %d levels, loaded %d",
			ErrLevelMismatch, len(recorded), len(loaded))
	}
	for i := range recorded {
		if recorded[i] != loaded[i] {
			return fmt.Errorf("%w: level %d is %q, loaded %q",
				ErrLevelMismatch, i+1, recorded[i], loaded[i])
		}
	}
	return nil
}
