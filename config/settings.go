package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/core"
	"github.com/lixenwraith/snake-term/engine"
)

// Sentinel errors
var (
	ErrInvalidSpeed    = errors.New("speed must be positive")
	ErrReplayAndRecord = errors.New("cannot record while replaying")
)

// Settings holds every user-facing option
// Precedence, lowest first: defaults, .env file, environment, command line flags
type Settings struct {
	Speed time.Duration // delay between ticks

	Body  rune
	Food  rune
	HeadW rune
	HeadN rune
	HeadE rune
	HeadS rune
	Head  string // WNES sequence overriding the four head glyphs

	Seed uint64 // 0 = time based

	HideScore        bool
	AutoRestart      bool
	InvertControls   bool
	DisableBorders   bool // wrap-around
	Obstacles        int
	ProgressiveSpeed bool
	Multiplayer      bool
	ShrinkingBorder  bool

	MapWidth  int // 0 = derive from terminal
	MapHeight int // 0 = derive from terminal

	Record string // replay output path
	Replay string // replay input path

	Mute  bool
	Debug bool
}

// Default returns settings with built-in defaults
func Default() *Settings {
	return &Settings{
		Speed: constants.DefaultTickInterval,
		Body:  constants.DefaultBodyGlyph,
		Food:  constants.DefaultFoodGlyph,
		HeadW: constants.DefaultHeadWest,
		HeadN: constants.DefaultHeadNorth,
		HeadE: constants.DefaultHeadEast,
		HeadS: constants.DefaultHeadSouth,
	}
}

// BindFlags registers command line flags using the current values as defaults
func (s *Settings) BindFlags(fs *flag.FlagSet) {
	fs.Var(&millisValue{&s.Speed}, "speed", "Frame delay in milliseconds (smaller = faster)")
	fs.Var(&runeValue{&s.Body}, "body", "Snake body character")
	fs.Var(&runeValue{&s.HeadW}, "head-w", "Head glyph when moving west")
	fs.Var(&runeValue{&s.HeadN}, "head-n", "Head glyph when moving north")
	fs.Var(&runeValue{&s.HeadE}, "head-e", "Head glyph when moving east")
	fs.Var(&runeValue{&s.HeadS}, "head-s", "Head glyph when moving south")
	fs.StringVar(&s.Head, "head", s.Head, "Set all 4 head chars as a WNES sequence (e.g. '<^>v')")
	fs.Var(&runeValue{&s.Food}, "food", "Food glyph")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "RNG seed (0 = use time)")
	fs.BoolVar(&s.HideScore, "hide-score", s.HideScore, "Hide the score display")
	fs.BoolVar(&s.AutoRestart, "auto-restart", s.AutoRestart, "Automatically restart on game over")
	fs.BoolVar(&s.InvertControls, "invert-controls", s.InvertControls, "Invert movement controls")
	fs.BoolVar(&s.DisableBorders, "disable-borders", s.DisableBorders, "Enable wrap-around (pass from edge to opposite)")
	fs.IntVar(&s.Obstacles, "obstacles", s.Obstacles, "Number of random obstacles on the map")
	fs.BoolVar(&s.ProgressiveSpeed, "progressive-speed", s.ProgressiveSpeed, "Speed up as the snake grows")
	fs.BoolVar(&s.Multiplayer, "multiplayer", s.Multiplayer, "Two players: WASD and arrow keys")
	fs.BoolVar(&s.ShrinkingBorder, "shrinking-border", s.ShrinkingBorder, "Shrink the playable area over time")
	fs.IntVar(&s.MapWidth, "map-width", s.MapWidth, "Map width (0 = auto-detect from terminal)")
	fs.IntVar(&s.MapHeight, "map-height", s.MapHeight, "Map height (0 = auto-detect from terminal)")
	fs.StringVar(&s.Record, "record", s.Record, "Record the session's inputs to this file")
	fs.StringVar(&s.Replay, "replay", s.Replay, "Play back a recorded session from this file")
	fs.BoolVar(&s.Mute, "mute", s.Mute, "Disable sound effects")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "Write a debug log to logs/")
}

// Resolve applies the head sequence and derives missing map dimensions from the terminal size
// termCols or termRows <= 0 means the size is unknown
func (s *Settings) Resolve(termCols, termRows int) {
	if utf8.RuneCountInString(s.Head) >= 4 {
		r := []rune(s.Head)
		s.HeadW, s.HeadN, s.HeadE, s.HeadS = r[0], r[1], r[2], r[3]
	}

	if s.MapWidth != 0 && s.MapHeight != 0 {
		return
	}

	if termCols <= 0 || termRows <= 0 {
		if s.MapWidth == 0 {
			s.MapWidth = constants.DefaultMapWidth
		}
		if s.MapHeight == 0 {
			s.MapHeight = constants.DefaultMapHeight
		}
		return
	}

	if s.MapWidth == 0 {
		w := max(termCols-constants.AutoMapColumnMargin, 0) / constants.CellScreenWidth
		s.MapWidth = clamp(w, constants.MinAutoMapSize, constants.MaxAutoMapWidth)
	}
	if s.MapHeight == 0 {
		h := max(termRows-constants.AutoMapRowMargin, 0)
		s.MapHeight = clamp(h, constants.MinAutoMapSize, constants.MaxAutoMapHeight)
	}
}

// Validate checks option combinations that cannot run
func (s *Settings) Validate() error {
	if s.Speed <= 0 {
		return ErrInvalidSpeed
	}
	if s.Record != "" && s.Replay != "" {
		return ErrReplayAndRecord
	}
	if err := s.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("invalid map: %w", err)
	}
	return nil
}

// EffectiveSpeed returns the tick delay for a snake of the given length
// Progressive speed removes a step per segment past the initial length, down to a floor
func (s *Settings) EffectiveSpeed(length int) time.Duration {
	if !s.ProgressiveSpeed {
		return s.Speed
	}
	grown := max(length-constants.InitialSnakeLength, 0)
	d := s.Speed - time.Duration(grown)*constants.ProgressiveSpeedStep
	return max(d, constants.MinTickInterval)
}

// HeadGlyph returns the head character for a heading
func (s *Settings) HeadGlyph(d core.Direction) rune {
	switch d {
	case core.West:
		return s.HeadW
	case core.North:
		return s.HeadN
	case core.East:
		return s.HeadE
	default:
		return s.HeadS
	}
}

// EngineConfig extracts the values the simulation consumes
func (s *Settings) EngineConfig() engine.Config {
	return engine.Config{
		Width:           s.MapWidth,
		Height:          s.MapHeight,
		Obstacles:       s.Obstacles,
		Wrap:            s.DisableBorders,
		Multiplayer:     s.Multiplayer,
		ShrinkingBorder: s.ShrinkingBorder,
		Seed:            s.Seed,
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
