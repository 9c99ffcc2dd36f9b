package replay

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Sentinel errors
var (
	ErrNoSeed = errors.New("replay has no seed; pass -seed or keep the .env sidecar next to the replay file")
)

// Meta describes the round a replay was recorded from
// Playback reproduces the round only with the same seed and board options
type Meta struct {
	Session   string
	Seed      uint64
	Width     int
	Height    int
	Obstacles int
	Wrap      bool
	Shrink    bool
	Ticks     int
}

// MetaPath returns the sidecar path for a replay file
func MetaPath(replayPath string) string {
	return replayPath + ".env"
}

// Save writes the metadata in dotenv format
func (m Meta) Save(path string) error {
	vars := map[string]string{
		"SNAKE_SESSION":          m.Session,
		"SNAKE_SEED":             strconv.FormatUint(m.Seed, 10),
		"SNAKE_MAP_WIDTH":        strconv.Itoa(m.Width),
		"SNAKE_MAP_HEIGHT":       strconv.Itoa(m.Height),
		"SNAKE_OBSTACLES":        strconv.Itoa(m.Obstacles),
		"SNAKE_DISABLE_BORDERS":  strconv.FormatBool(m.Wrap),
		"SNAKE_SHRINKING_BORDER": strconv.FormatBool(m.Shrink),
		"SNAKE_TICKS":            strconv.Itoa(m.Ticks),
	}
	if err := godotenv.Write(vars, path); err != nil {
		return fmt.Errorf("write replay metadata: %w", err)
	}
	return nil
}

// LoadMeta reads a sidecar written by Save
// A missing sidecar returns ErrNoSeed; unparsable fields are left zero
func LoadMeta(path string) (Meta, error) {
	var m Meta

	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, ErrNoSeed
		}
		return m, fmt.Errorf("read replay metadata: %w", err)
	}

	seed, err := strconv.ParseUint(vars["SNAKE_SEED"], 10, 64)
	if err != nil || seed == 0 {
		return m, ErrNoSeed
	}

	m.Session = vars["SNAKE_SESSION"]
	m.Seed = seed
	m.Width, _ = strconv.Atoi(vars["SNAKE_MAP_WIDTH"])
	m.Height, _ = strconv.Atoi(vars["SNAKE_MAP_HEIGHT"])
	m.Obstacles, _ = strconv.Atoi(vars["SNAKE_OBSTACLES"])
	m.Wrap, _ = strconv.ParseBool(vars["SNAKE_DISABLE_BORDERS"])
	m.Shrink, _ = strconv.ParseBool(vars["SNAKE_SHRINKING_BORDER"])
	m.Ticks, _ = strconv.Atoi(vars["SNAKE_TICKS"])
	return m, nil
}
