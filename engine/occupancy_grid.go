package engine

import (
	"math"

	"github.com/lixenwraith/snake-term/core"
)

// OccupancyGrid is a dense per-cell counter used as an O(1) collision oracle
// A cell count above 1 means two segments overlap
type OccupancyGrid struct {
	Width  int
	Height int
	Cells  []uint8 // 1D array: index = row*Width + col
}

// NewOccupancyGrid creates a zeroed grid with the specified dimensions
func NewOccupancyGrid(width, height int) *OccupancyGrid {
	return &OccupancyGrid{
		Width:  width,
		Height: height,
		Cells:  make([]uint8, width*height),
	}
}

// InBounds reports whether p addresses a cell of the grid
func (g *OccupancyGrid) InBounds(p core.Position) bool {
	return p.Col >= 0 && p.Col < g.Width && p.Row >= 0 && p.Row < g.Height
}

// Inc increments the counter at p and returns the new count
// Out of bounds positions are ignored and report 0
func (g *OccupancyGrid) Inc(p core.Position) uint8 {
	if !g.InBounds(p) {
		return 0
	}

	cell := &g.Cells[p.Row*g.Width+p.Col]
	if *cell < math.MaxUint8 {
		*cell++
	}
	return *cell
}

// Dec decrements the counter at p, saturating at zero
func (g *OccupancyGrid) Dec(p core.Position) {
	if !g.InBounds(p) {
		return
	}

	cell := &g.Cells[p.Row*g.Width+p.Col]
	if *cell > 0 {
		*cell--
	}
}

// Count returns the counter at p, 0 when out of bounds
func (g *OccupancyGrid) Count(p core.Position) uint8 {
	if !g.InBounds(p) {
		return 0
	}
	return g.Cells[p.Row*g.Width+p.Col]
}

// Occupied returns the number of cells with a non-zero count
func (g *OccupancyGrid) Occupied() int {
	n := 0
	for _, c := range g.Cells {
		if c > 0 {
			n++
		}
	}
	return n
}

// Clear zeroes all cells
func (g *OccupancyGrid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = 0
	}
}
