package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat       SoundType = iota // Regular food eaten
	SoundBonus                      // Bonus food eaten
	SoundDeath                      // Snake died
	SoundHighScore                  // New record on game over
	soundTypeCount
)

// String returns the key used in SNAKE_SFX_VOLUMES
func (st SoundType) String() string {
	switch st {
	case SoundEat:
		return "eat"
	case SoundBonus:
		return "bonus"
	case SoundDeath:
		return "death"
	case SoundHighScore:
		return "highscore"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
