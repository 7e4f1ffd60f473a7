package input

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPumpForwardsKeys(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}

	m, _ := NewMapper(nil)
	out := make(chan Command, 8)
	done := make(chan struct{})

	go func() {
		Pump(context.Background(), screen, m, out)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	want := []Command{
		{Action: ActionMoveRight, Rune: 'd'},
		{Action: ActionMoveUp},
		{Action: ActionNone, Rune: 'x'},
	}
	for i, w := range want {
		select {
		case got := <-out:
			if got != w {
				t.Errorf("Command %d: expected %+v, got %+v", i, w, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("Timed out waiting for command %d", i)
		}
	}

	screen.Fini()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pump did not return after screen finalized")
	}
}

func TestPumpStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	defer screen.Fini()

	m, _ := NewMapper(nil)
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Command) // unbuffered, nobody reads
	done := make(chan struct{})

	go func() {
		Pump(ctx, screen, m, out)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pump blocked on send after cancel")
	}
}
