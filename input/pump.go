package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// EventSource is the blocking event feed of a tcell screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump forwards mapped key events to out until the source closes or ctx is cancelled
// PollEvent returns nil once the screen is finalized, which ends the pump
// Non-key events are dropped; the renderer detects resizes on its own
func Pump(ctx context.Context, src EventSource, m *Mapper, out chan<- Command) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}

		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		select {
		case out <- m.Map(key):
		case <-ctx.Done():
			return
		}
	}
}
