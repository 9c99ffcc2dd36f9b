package input

import "github.com/lixenwraith/snake-term/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Q, Esc, Ctrl+C
	IntentToggleMute // Ctrl+S

	// Gameplay
	IntentMove  // WASD, arrows
	IntentPause // p, P, Space

	// Menu navigation
	IntentMenuUp   // w, W, Up
	IntentMenuDown // s, S, Down
	IntentConfirm  // Enter, Space

	// Game over
	IntentRestart // r, R
	IntentMenu    // m, M
)

// Intent is a resolved key press
// Player and Dir are only meaningful for IntentMove
type Intent struct {
	Type   IntentType
	Player int
	Dir    core.Direction
}
