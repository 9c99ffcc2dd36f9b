package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/snake-term/core"
)

// NoInput marks a tick without a committed turn
const NoInput = '.'

// Recorder collects player one's committed turn for every tick of a round
type Recorder struct {
	moves []byte
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{moves: make([]byte, 0, 1024)}
}

// Record appends one tick; turned false records no input
func (r *Recorder) Record(dir core.Direction, turned bool) {
	if !turned {
		r.moves = append(r.moves, NoInput)
		return
	}
	r.moves = append(r.moves, dir.Symbol())
}

// Len returns the number of recorded ticks
func (r *Recorder) Len() int {
	return len(r.moves)
}

// Reset discards recorded ticks, used when a round restarts
func (r *Recorder) Reset() {
	r.moves = r.moves[:0]
}

// WriteTo writes one symbol per line
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, m := range r.moves {
		if err := bw.WriteByte(m); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n + 1, err
		}
		n += 2
	}
	return n, bw.Flush()
}

// Save writes the move file to path and its metadata sidecar next to it
func (r *Recorder) Save(path string, meta Meta) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}

	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write replay: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close replay: %w", err)
	}

	meta.Ticks = r.Len()
	return meta.Save(MetaPath(path))
}
