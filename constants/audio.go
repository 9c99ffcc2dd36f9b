package constants

import "time"

// Speaker setup
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, trading latency against underruns
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume scales every effect, 0.0 to 1.0
	DefaultMasterVolume = 0.5
)

// Eat Sound Timing
const (
	EatSoundDuration = 60 * time.Millisecond
	EatSoundAttack   = 3 * time.Millisecond
	EatSoundRelease  = 40 * time.Millisecond
	EatSoundFreq     = 880.0
)

// Bonus Sound Timing
const (
	BonusSoundNote1Duration = 70 * time.Millisecond
	BonusSoundNote2Duration = 220 * time.Millisecond
	BonusSoundAttack        = 5 * time.Millisecond
	BonusSoundNote1Release  = 30 * time.Millisecond
	BonusSoundNote2Release  = 160 * time.Millisecond
	BonusSoundNote1Freq     = 987.77
	BonusSoundNote2Freq     = 1318.51
)

// Death Sound Timing
const (
	DeathSoundDuration = 450 * time.Millisecond
	DeathSoundAttack   = 5 * time.Millisecond
	DeathSoundRelease  = 350 * time.Millisecond
	DeathSoundFreq     = 110.0
)

// High Score Sound Timing
const (
	HighScoreNoteDuration = 120 * time.Millisecond
	HighScoreNoteAttack   = 5 * time.Millisecond
	HighScoreNoteRelease  = 80 * time.Millisecond
)

// HighScoreArpeggio is the C major rising figure played on a new record
var HighScoreArpeggio = [...]float64{523.25, 659.25, 783.99, 1046.50}
