package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/snake-term/core"
)

type move struct {
	dir core.Direction
	ok  bool
}

// Player feeds recorded turns back one tick at a time
type Player struct {
	moves []move
	pos   int
}

// Load reads a replay file
func Load(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses one symbol per line; unknown symbols and blank lines are ticks without input
func Read(r io.Reader) (*Player, error) {
	p := &Player{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		dir, ok := core.ParseSymbol(strings.TrimSpace(sc.Text()))
		p.moves = append(p.moves, move{dir: dir, ok: ok})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	return p, nil
}

// Next returns the turn for the coming tick
// more is false once the recording is exhausted, dir and ok are then meaningless
func (p *Player) Next() (dir core.Direction, ok bool, more bool) {
	if p.pos >= len(p.moves) {
		return 0, false, false
	}
	m := p.moves[p.pos]
	p.pos++
	return m.dir, m.ok, true
}

// Len returns the number of recorded ticks
func (p *Player) Len() int {
	return len(p.moves)
}

// Remaining returns the number of ticks not yet played
func (p *Player) Remaining() int {
	return len(p.moves) - p.pos
}
