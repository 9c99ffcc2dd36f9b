package engine

import "github.com/lixenwraith/snake-term/core"

// Obstacles is consulted by movement for lethal cells
type Obstacles interface {
	IsWall(p core.Position) bool
}

// WallSet keeps walls in placement order with O(1) membership
type WallSet struct {
	cells []core.Position
	index map[core.Position]struct{}
}

// NewWallSet creates an empty wall set
func NewWallSet() *WallSet {
	return &WallSet{index: make(map[core.Position]struct{})}
}

// Add inserts p, returning false if it is already a wall
func (w *WallSet) Add(p core.Position) bool {
	if _, ok := w.index[p]; ok {
		return false
	}
	w.index[p] = struct{}{}
	w.cells = append(w.cells, p)
	return true
}

// IsWall reports whether p is a wall
func (w *WallSet) IsWall(p core.Position) bool {
	_, ok := w.index[p]
	return ok
}

// Len returns the number of walls
func (w *WallSet) Len() int {
	return len(w.cells)
}

// Cells returns walls in placement order. Callers must not modify the slice
func (w *WallSet) Cells() []core.Position {
	return w.cells
}

// Clear removes all walls
func (w *WallSet) Clear() {
	w.cells = w.cells[:0]
	clear(w.index)
}

// Retain drops every wall for which keep returns false and reports how many were removed
func (w *WallSet) Retain(keep func(core.Position) bool) int {
	kept := w.cells[:0]
	removed := 0
	for _, p := range w.cells {
		if keep(p) {
			kept = append(kept, p)
			continue
		}
		delete(w.index, p)
		removed++
	}
	w.cells = kept
	return removed
}
