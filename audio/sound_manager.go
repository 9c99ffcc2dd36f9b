package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/snake-term/constants"
)

// SoundManager plays one-shot effects through a shared mixer
// Safe for concurrent use; every Play is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      uint64
}

// NewSoundManager creates a sound manager, nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Fails without an audio device; callers keep running silently
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.WithField("sample_rate", sm.cfg.SampleRate).Debug("audio initialized")
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues a sound effect; returns false when nothing was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played++
	return true
}

// PlayEat plays the food cue
func (sm *SoundManager) PlayEat() { sm.Play(SoundEat) }

// PlayBonus plays the bonus food cue
func (sm *SoundManager) PlayBonus() { sm.Play(SoundBonus) }

// PlayDeath plays the death cue
func (sm *SoundManager) PlayDeath() { sm.Play(SoundDeath) }

// PlayHighScore plays the new record cue
func (sm *SoundManager) PlayHighScore() { sm.Play(SoundHighScore) }

// SetMuted silences or restores effects
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of effects queued since creation
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Duration returns how long the effect for st plays, 0 for unknown types
func Duration(st SoundType) time.Duration {
	switch st {
	case SoundEat:
		return constants.EatSoundDuration
	case SoundBonus:
		return constants.BonusSoundNote1Duration + constants.BonusSoundNote2Duration
	case SoundDeath:
		return constants.DeathSoundDuration
	case SoundHighScore:
		return time.Duration(len(constants.HighScoreArpeggio)) * constants.HighScoreNoteDuration
	default:
		return 0
	}
}
