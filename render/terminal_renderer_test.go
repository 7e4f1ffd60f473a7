package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func readRow(screen tcell.Screen, y, width int) string {
	row := make([]rune, width)
	for x := range row {
		r, _, _, _ := screen.GetContent(x, y)
		row[x] = r
	}
	return string(row)
}

func TestTerminalRendererDrawsBoard(t *testing.T) {
	screen := newSimScreen(t, 60, 30)
	r := NewTerminalRenderer(screen)

	s := newSnapshot(t, 6, 3)
	if err := r.Render(s); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f := Project(s)
	for y, want := range f.Rows() {
		if got := readRow(screen, y, f.Width); got != want {
			t.Errorf("Row %d: expected %q, got %q", y, want, got)
		}
	}

	status := readRow(screen, f.Height, len(f.Status))
	if status != "Score: 0" {
		t.Errorf("Expected status line below board, got %q", status)
	}

	_, _, style, _ := screen.GetContent(4, 2)
	if style != r.styles.Cells[ClassHead] {
		t.Error("Expected head style on head cell")
	}
}

func TestTerminalRendererIdempotent(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	r := NewTerminalRenderer(screen)
	s := newSnapshot(t, 8, 4)
	s.Tip = "Stay in the middle."

	if err := r.Render(s); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	first := make([]string, 20)
	for y := range first {
		first[y] = readRow(screen, y, 40)
	}

	if err := r.Render(s); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for y := range first {
		if got := readRow(screen, y, 40); got != first[y] {
			t.Errorf("Row %d changed between identical renders: %q -> %q", y, first[y], got)
		}
	}
}

func TestTerminalRendererTextPanels(t *testing.T) {
	screen := newSimScreen(t, 60, 30)
	r := NewTerminalRenderer(screen)

	s := newSnapshot(t, 10, 5)
	s.Phase = engine.PhasePaused
	s.Question = "why"
	s.Tip = "Circle the board."
	if err := r.Render(s); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f := Project(s)
	// status, banner, prompt, blank, tip
	row := f.Height + 1
	if got := readRow(screen, row, len(f.Banner)); got != f.Banner {
		t.Errorf("Expected banner %q, got %q", f.Banner, got)
	}
	row++
	if got := readRow(screen, row, len(f.Prompt)); got != f.Prompt {
		t.Errorf("Expected prompt %q, got %q", f.Prompt, got)
	}
	row += 2
	if got := readRow(screen, row, len(s.Tip)); got != s.Tip {
		t.Errorf("Expected tip %q, got %q", s.Tip, got)
	}
}

func TestTerminalRendererClipsSmallScreen(t *testing.T) {
	screen := newSimScreen(t, 5, 3)
	r := NewTerminalRenderer(screen)
	if err := r.Render(newSnapshot(t, 20, 20)); err != nil {
		t.Errorf("Expected clipped render to succeed, got %v", err)
	}
}

func TestTerminalRendererNoScreen(t *testing.T) {
	r := NewTerminalRenderer(nil)
	if err := r.Draw(Frame{}); err != ErrNoScreen {
		t.Errorf("Expected ErrNoScreen, got %v", err)
	}
}
