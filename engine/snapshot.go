package engine

import (
	"fmt"
	"strings"
)

// Phase is the loop-level mode layered over GameState
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// TipMode selects where the tip collaborator is consulted
type TipMode uint8

const (
	// TipModeInline enables pause with chat and on-demand tips during play
	TipModeInline TipMode = iota
	// TipModeEnd only asks for a score-aware tip once the round is over
	TipModeEnd
)

// ParseTipMode accepts "inline" and "end"
func ParseTipMode(s string) (TipMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline":
		return TipModeInline, nil
	case "end":
		return TipModeEnd, nil
	default:
		return 0, fmt.Errorf("unknown tip mode %q (want inline or end)", s)
	}
}

func (m TipMode) String() string {
	if m == TipModeEnd {
		return "end"
	}
	return "inline"
}

// Snapshot is everything a renderer needs for one frame
// State must be treated as read-only
type Snapshot struct {
	State    *GameState
	Phase    Phase
	Mode     TipMode
	Tip      string
	Question string
	Notice   string
	Muted    bool
}

// Renderer receives one complete frame per tick
type Renderer interface {
	Render(Snapshot) error
}
