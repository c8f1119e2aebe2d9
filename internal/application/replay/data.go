// Package replay records the per-frame input of a run and plays it back
// through a session without a window.
package replay

import "github.com/younwookim/pipehop/internal/application/system"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
	S  bool `json:"s,omitempty"`  // Start
	P  bool `json:"p,omitempty"`  // Pause
	RS bool `json:"rs,omitempty"` // Restart
	M  bool `json:"m,omitempty"`  // Menu
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version    string       `json:"version"`
	StartLevel int          `json:"startLevel"` // 0-based
	Levels     []string     `json:"levels"`     // level IDs at record time
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}

// NewFrameInput packs one frame of input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		S:  in.Start,
		P:  in.Pause,
		RS: in.Restart,
		M:  in.Menu,
	}
}

// Input unpacks the frame into the simulation's input type
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:    fi.L,
		Right:   fi.R,
		Jump:    fi.J,
		Start:   fi.S,
		Pause:   fi.P,
		Restart: fi.RS,
		Menu:    fi.M,
	}
}
