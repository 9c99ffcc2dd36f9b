package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-term/core"
)

// Context selects the binding set in effect
type Context uint8

const (
	ContextGame Context = iota
	ContextMenu
	ContextGameOver
)

// KeyEntry describes a key's meaning in one context
// Secondary marks movement keys owned by player two in multiplayer
type KeyEntry struct {
	Type      IntentType
	Dir       core.Direction
	Secondary bool
}

// KeyTable maps keys to behaviors for every context
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc), shared by all contexts unless overridden
	SystemKeys map[tcell.Key]KeyEntry

	GameKeys  map[tcell.Key]KeyEntry
	GameRunes map[rune]KeyEntry

	MenuKeys  map[tcell.Key]KeyEntry
	MenuRunes map[rune]KeyEntry

	GameOverRunes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
// Runes are matched case-insensitively by the mapper, so only lower case is listed
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SystemKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
		},

		GameKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:    {Type: IntentMove, Dir: core.North, Secondary: true},
			tcell.KeyDown:  {Type: IntentMove, Dir: core.South, Secondary: true},
			tcell.KeyLeft:  {Type: IntentMove, Dir: core.West, Secondary: true},
			tcell.KeyRight: {Type: IntentMove, Dir: core.East, Secondary: true},
		},
		GameRunes: map[rune]KeyEntry{
			'w': {Type: IntentMove, Dir: core.North},
			's': {Type: IntentMove, Dir: core.South},
			'a': {Type: IntentMove, Dir: core.West},
			'd': {Type: IntentMove, Dir: core.East},
			'p': {Type: IntentPause},
			' ': {Type: IntentPause},
			'q': {Type: IntentQuit},
		},

		MenuKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:    {Type: IntentMenuUp},
			tcell.KeyDown:  {Type: IntentMenuDown},
			tcell.KeyEnter: {Type: IntentConfirm},
		},
		MenuRunes: map[rune]KeyEntry{
			'w': {Type: IntentMenuUp},
			's': {Type: IntentMenuDown},
			' ': {Type: IntentConfirm},
			'q': {Type: IntentQuit},
		},

		GameOverRunes: map[rune]KeyEntry{
			'r': {Type: IntentRestart},
			'm': {Type: IntentMenu},
			'q': {Type: IntentQuit},
		},
	}
}

func (kt *KeyTable) lookup(ctx Context, key tcell.Key, r rune) (KeyEntry, bool) {
	var keys map[tcell.Key]KeyEntry
	var runes map[rune]KeyEntry
	switch ctx {
	case ContextGame:
		keys, runes = kt.GameKeys, kt.GameRunes
	case ContextMenu:
		keys, runes = kt.MenuKeys, kt.MenuRunes
	case ContextGameOver:
		runes = kt.GameOverRunes
	}

	if key == tcell.KeyRune {
		e, ok := runes[unicode.ToLower(r)]
		return e, ok
	}
	if e, ok := keys[key]; ok {
		return e, true
	}
	e, ok := kt.SystemKeys[key]
	return e, ok
}
