package input

import (
	"github.com/gdamore/tcell/v2"
)

// Mapper resolves key events into intents
// Control inversion and player routing live here; the simulation only sees directions
type Mapper struct {
	table       *KeyTable
	invert      bool
	multiplayer bool
}

// NewMapper creates a mapper over the default key table
func NewMapper(invert, multiplayer bool) *Mapper {
	return &Mapper{
		table:       DefaultKeyTable(),
		invert:      invert,
		multiplayer: multiplayer,
	}
}

// MapEvent resolves a tcell key event in ctx
func (m *Mapper) MapEvent(ctx Context, ev *tcell.EventKey) Intent {
	return m.MapKey(ctx, ev.Key(), ev.Rune())
}

// MapKey resolves a key code and rune in ctx; unbound keys give IntentNone
func (m *Mapper) MapKey(ctx Context, key tcell.Key, r rune) Intent {
	entry, ok := m.table.lookup(ctx, key, r)
	if !ok {
		return Intent{Type: IntentNone}
	}

	intent := Intent{Type: entry.Type}
	if entry.Type != IntentMove {
		return intent
	}

	intent.Dir = entry.Dir
	if m.invert {
		intent.Dir = intent.Dir.Opposite()
	}
	if entry.Secondary && m.multiplayer {
		intent.Player = 1
	}
	return intent
}
