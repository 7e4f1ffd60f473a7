package input

import (
	"fmt"
	"maps"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// runeAliases covers keys that cannot be written as a bare single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyNames maps config key names to tcell special keys
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"ctrl_c":    tcell.KeyCtrlC,
	"ctrl_p":    tcell.KeyCtrlP,
	"ctrl_q":    tcell.KeyCtrlQ,
	"ctrl_r":    tcell.KeyCtrlR,
	"ctrl_t":    tcell.KeyCtrlT,
}

// KeyTable maps special keys and runes to actions
// Rune lookups are case-insensitive: bindings are stored lower-case
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows/WASD, p, r or Ctrl+R, t, m, y, n
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:         ActionMoveUp,
			tcell.KeyDown:       ActionMoveDown,
			tcell.KeyLeft:       ActionMoveLeft,
			tcell.KeyRight:      ActionMoveRight,
			tcell.KeyEnter:      ActionSubmit,
			tcell.KeyBackspace:  ActionBackspace,
			tcell.KeyBackspace2: ActionBackspace,
			tcell.KeyEscape:     ActionCancel,
			tcell.KeyCtrlC:      ActionQuit,
			tcell.KeyCtrlQ:      ActionQuit,
			tcell.KeyCtrlR:      ActionRestart,
		},
		Runes: map[rune]Action{
			'w': ActionMoveUp,
			's': ActionMoveDown,
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			'p': ActionPause,
			'r': ActionRestart,
			't': ActionRequestTip,
			'm': ActionToggleMute,
			'y': ActionYes,
			'n': ActionNo,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// ParseBindings converts a [keys] config table (key name → action name) into a sparse override table
// Returns error on unknown key or action names
func ParseBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}

	for keyStr, actionName := range bindings {
		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, actionName)
		}

		name := strings.ToLower(strings.TrimSpace(keyStr))
		if k, ok := keyNames[name]; ok {
			kt.Keys[k] = action
			// Terminals disagree on which backspace code they send
			if k == tcell.KeyBackspace2 {
				kt.Keys[tcell.KeyBackspace] = action
			}
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		kt.Runes[unicode.ToLower(r)] = action
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}

	return result
}
