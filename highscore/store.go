package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	appDir       = "snake-term"
	fileName     = "highscore"
	fallbackName = ".snake-term-highscore"
)

// Store persists the best score as a plain text integer
type Store struct {
	path string
	best int
}

// NewStore creates a store backed by path; call Load to read the saved value
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user score file, falling back to a dot file in the home
// or working directory when no cache directory is available
func DefaultPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, appDir, fileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, fallbackName)
	}
	return fallbackName
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Best returns the cached best score
func (s *Store) Best() int {
	return s.best
}

// Load reads the saved score; a missing or corrupt file counts as 0
func (s *Store) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).WithField("path", s.path).Warn("high score unreadable")
		}
		s.best = 0
		return 0
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		log.WithField("path", s.path).Warn("high score file corrupt, resetting")
		v = 0
	}
	s.best = v
	return v
}

// Save writes score, creating the parent directory when needed
func (s *Store) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	s.best = score
	return nil
}

// Update records score when it beats the saved best
// Returns the best score after the update and whether score set a new record
func (s *Store) Update(score int) (best int, isNew bool, err error) {
	if score <= s.best {
		return s.best, false, nil
	}
	if err := s.Save(score); err != nil {
		// Keep the record for this run even if the file is unwritable
		s.best = score
		return score, true, err
	}
	return score, true, nil
}
