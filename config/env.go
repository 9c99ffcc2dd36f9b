package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment variable read by LoadEnv
const EnvPrefix = "SNAKE_"

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// LoadEnv applies values from an optional dotenv file, then from the process environment
// A missing file is not an error; malformed values are ignored and keep the previous setting
func (s *Settings) LoadEnv(path string) error {
	vars := make(map[string]string)

	if path != "" {
		fileVars, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	// Process environment wins over the file
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			vars[EnvPrefix+key] = v
		}
	}

	s.apply(vars)
	return nil
}

var envKeys = []string{
	"SPEED", "BODY", "FOOD", "HEAD", "HEAD_W", "HEAD_N", "HEAD_E", "HEAD_S", "SEED",
	"HIDE_SCORE", "AUTO_RESTART", "INVERT_CONTROLS", "DISABLE_BORDERS", "OBSTACLES",
	"PROGRESSIVE_SPEED", "MULTIPLAYER", "SHRINKING_BORDER", "MAP_WIDTH", "MAP_HEIGHT",
	"MUTE", "DEBUG",
}

func (s *Settings) apply(vars map[string]string) {
	get := func(key string) (string, bool) {
		v, ok := vars[EnvPrefix+key]
		return v, ok && v != ""
	}

	if v, ok := get("SPEED"); ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			s.Speed = time.Duration(ms) * time.Millisecond
		}
	}

	runes := []struct {
		key string
		dst *rune
	}{
		{"BODY", &s.Body},
		{"FOOD", &s.Food},
		{"HEAD_W", &s.HeadW},
		{"HEAD_N", &s.HeadN},
		{"HEAD_E", &s.HeadE},
		{"HEAD_S", &s.HeadS},
	}
	for _, r := range runes {
		if v, ok := get(r.key); ok {
			if c, size := utf8.DecodeRuneInString(v); c != utf8.RuneError && size == len(v) {
				*r.dst = c
			}
		}
	}

	if v, ok := get("HEAD"); ok {
		s.Head = v
	}

	if v, ok := get("SEED"); ok {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			s.Seed = seed
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"HIDE_SCORE", &s.HideScore},
		{"AUTO_RESTART", &s.AutoRestart},
		{"INVERT_CONTROLS", &s.InvertControls},
		{"DISABLE_BORDERS", &s.DisableBorders},
		{"PROGRESSIVE_SPEED", &s.ProgressiveSpeed},
		{"MULTIPLAYER", &s.Multiplayer},
		{"SHRINKING_BORDER", &s.ShrinkingBorder},
		{"MUTE", &s.Mute},
		{"DEBUG", &s.Debug},
	}
	for _, b := range bools {
		if v, ok := get(b.key); ok {
			if val, err := strconv.ParseBool(v); err == nil {
				*b.dst = val
			}
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"OBSTACLES", &s.Obstacles},
		{"MAP_WIDTH", &s.MapWidth},
		{"MAP_HEIGHT", &s.MapHeight},
	}
	for _, i := range ints {
		if v, ok := get(i.key); ok {
			if val, err := strconv.Atoi(v); err == nil && val >= 0 {
				*i.dst = val
			}
		}
	}
}
