package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Mapper translates tcell key events into commands
type Mapper struct {
	table *KeyTable
}

// NewMapper builds a mapper from the default table merged with config overrides
func NewMapper(bindings map[string]string) (*Mapper, error) {
	table := DefaultKeyTable()
	if len(bindings) > 0 {
		override, err := ParseBindings(bindings)
		if err != nil {
			return nil, err
		}
		table = MergeKeyTable(table, override)
	}
	return &Mapper{table: table}, nil
}

// Map resolves a key event; unbound keys map to ActionNone
func (m *Mapper) Map(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		return Command{Action: m.table.Runes[unicode.ToLower(r)], Rune: r}
	}
	return Command{Action: m.table.Keys[ev.Key()]}
}
