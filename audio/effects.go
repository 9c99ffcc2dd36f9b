package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-term/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a tone that glides linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch slides from start to end over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s over duration; attack and release are clamped to fit
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)

	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		totalSamples: total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; Log2(0) is -Inf so zero is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateEatSound generates a short sine blip
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.EatSoundDuration

	var src beep.Streamer
	sine, err := generators.SineTone(rate, constants.EatSoundFreq)
	if err != nil {
		// Frequency above Nyquist for very low sample rates
		src = NewOscillator(constants.EatSoundFreq, d, WaveSine, rate)
	} else {
		src = beep.Take(rate.N(d), sine)
	}

	s := NewEnvelope(src, d, constants.EatSoundAttack, constants.EatSoundRelease, rate)
	return newVolume(s, cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateBonusSound generates a two-note chime
func CreateBonusSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(constants.BonusSoundNote1Freq, WaveSquare,
		constants.BonusSoundNote1Duration, constants.BonusSoundAttack, constants.BonusSoundNote1Release, rate)
	n2 := tone(constants.BonusSoundNote2Freq, WaveSquare,
		constants.BonusSoundNote2Duration, constants.BonusSoundAttack, constants.BonusSoundNote2Release, rate)

	// Square waves are loud next to the sine blip
	seq := newVolume(beep.Seq(n1, n2), 0.4)
	return newVolume(seq, cfg.EffectVolumes[SoundBonus]*cfg.MasterVolume)
}

// CreateDeathSound generates a falling buzz over a noise burst
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.DeathSoundDuration

	buzz := NewSweep(constants.DeathSoundFreq*2, constants.DeathSoundFreq/2, d, WaveSaw, rate)
	noise := NewOscillator(0, d, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(buzz, 0.6),
		newVolume(noise, 0.25),
	)
	shaped := NewEnvelope(mixed, d, constants.DeathSoundAttack, constants.DeathSoundRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundDeath]*cfg.MasterVolume)
}

// CreateHighScoreSound generates a rising arpeggio
func CreateHighScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constants.HighScoreArpeggio))
	for _, f := range constants.HighScoreArpeggio {
		notes = append(notes, tone(f, WaveSine,
			constants.HighScoreNoteDuration, constants.HighScoreNoteAttack, constants.HighScoreNoteRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundHighScore]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundBonus:
		return CreateBonusSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundHighScore:
		return CreateHighScoreSound(cfg)
	default:
		return nil
	}
}
