package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultBindings(t *testing.T) {
	m, err := NewMapper(nil)
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionMoveDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionMoveRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionMoveUp},
		{"S upper", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), ActionMoveDown},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionMoveLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionMoveRight},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPause},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), ActionRestart},
		{"tip", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), ActionRequestTip},
		{"yes", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), ActionYes},
		{"no", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), ActionNo},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionSubmit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionCancel},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"ctrl+q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), ActionQuit},
		{"ctrl+r", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), ActionRestart},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Map(tt.ev).Action; got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMapCarriesRune(t *testing.T) {
	m, _ := NewMapper(nil)

	cmd := m.Map(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone))
	if cmd.Rune != 'W' {
		t.Errorf("Expected original rune 'W' preserved for text entry, got %q", cmd.Rune)
	}

	cmd = m.Map(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if cmd.Rune != 0 {
		t.Errorf("Expected no rune for special key, got %q", cmd.Rune)
	}
}

func TestBindingOverrides(t *testing.T) {
	m, err := NewMapper(map[string]string{
		"k":      "move_up",
		"j":      "move_down",
		"w":      "none",
		"space":  "pause",
		"ctrl_r": "restart",
		"escape": "quit",
	})
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}

	checks := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), ActionMoveUp},
		{tcell.NewEventKey(tcell.KeyRune, 'J', tcell.ModNone), ActionMoveDown},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionNone},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPause},
		{tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), ActionRestart},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		// Untouched defaults survive the merge
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPause},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveUp},
	}
	for _, c := range checks {
		if got := m.Map(c.ev).Action; got != c.want {
			t.Errorf("Key %v/%q: expected %v, got %v", c.ev.Key(), c.ev.Rune(), c.want, got)
		}
	}
}

func TestBindingErrors(t *testing.T) {
	cases := []map[string]string{
		{"k": "jump"},
		{"kk": "move_up"},
		{"ctrl_z_z": "quit"},
	}
	for _, bindings := range cases {
		if _, err := NewMapper(bindings); err == nil {
			t.Errorf("Expected error for bindings %v", bindings)
		}
	}
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := DefaultKeyTable()
	override, err := ParseBindings(map[string]string{"p": "none"})
	if err != nil {
		t.Fatalf("ParseBindings failed: %v", err)
	}

	merged := MergeKeyTable(base, override)
	if _, ok := merged.Runes['p']; ok {
		t.Error("Expected 'p' to be unbound in merged table")
	}
	if base.Runes['p'] != ActionPause {
		t.Error("Base table was mutated by merge")
	}
}

func TestActionNames(t *testing.T) {
	for name, a := range actionRegistry {
		if a.String() != name {
			t.Errorf("Action %d: expected name %q, got %q", a, name, a.String())
		}
		if got, ok := ActionByName(name); !ok || got != a {
			t.Errorf("ActionByName(%q) = %v, %v", name, got, ok)
		}
	}
	if !ActionMoveLeft.IsMove() || ActionPause.IsMove() || ActionNone.IsMove() {
		t.Error("IsMove classification is wrong")
	}
}
