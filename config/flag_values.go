package config

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// runeValue is a flag.Value accepting exactly one character
type runeValue struct {
	dst *rune
}

func (v *runeValue) String() string {
	if v.dst == nil || *v.dst == 0 {
		return ""
	}
	return string(*v.dst)
}

func (v *runeValue) Set(s string) error {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return fmt.Errorf("expected a single character, got %q", s)
	}
	*v.dst = r
	return nil
}

// millisValue is a flag.Value holding a duration given as whole milliseconds
type millisValue struct {
	dst *time.Duration
}

func (v *millisValue) String() string {
	if v.dst == nil {
		return ""
	}
	return strconv.FormatInt(v.dst.Milliseconds(), 10)
}

func (v *millisValue) Set(s string) error {
	ms, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected milliseconds: %w", err)
	}
	if ms <= 0 {
		return ErrInvalidSpeed
	}
	*v.dst = time.Duration(ms) * time.Millisecond
	return nil
}
