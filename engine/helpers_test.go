package engine

import (
	"testing"

	"github.com/lixenwraith/snake-term/core"
)

// scriptedRand replays a fixed list of values, each reduced modulo n
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

// cellsRand returns a scriptedRand yielding the given cells, relative to a full board
func cellsRand(cells ...core.Position) *scriptedRand {
	r := &scriptedRand{}
	for _, c := range cells {
		r.values = append(r.values, c.Row, c.Col)
	}
	return r
}

// fullBorder is the unshrunk border of a width x height board
func fullBorder(width, height int) core.Rect {
	return core.NewRect(height, width)
}

// assertInvariants checks the structural invariants of a live snake
func assertInvariants(t *testing.T, s *Snake) {
	t.Helper()

	if len(s.Parts) == 0 {
		t.Fatal("Snake has no parts")
	}
	if s.Head != s.Parts[len(s.Parts)-1] {
		t.Errorf("Head %v does not match last part %v", s.Head, s.Parts[len(s.Parts)-1])
	}
	if !s.Dead && s.grid.Occupied() != len(s.Parts) {
		t.Errorf("Occupancy has %d cells, body has %d parts", s.grid.Occupied(), len(s.Parts))
	}
	if s.Length < len(s.Parts) {
		t.Errorf("Length %d below body size %d", s.Length, len(s.Parts))
	}
}
