package core

// Position is a zero-based (row, column) cell coordinate
type Position struct {
	Row int
	Col int
}

// Step returns the neighbouring cell in direction d, without bounds handling
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Rect is an axis-aligned area, Min inclusive and Max exclusive
type Rect struct {
	Min Position
	Max Position
}

// NewRect returns the rectangle covering (0,0) to (height,width)
func NewRect(height, width int) Rect {
	return Rect{Max: Position{Row: height, Col: width}}
}

// Height returns the number of rows covered
func (r Rect) Height() int {
	return r.Max.Row - r.Min.Row
}

// Width returns the number of columns covered
func (r Rect) Width() int {
	return r.Max.Col - r.Min.Col
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Position) bool {
	return p.Row >= r.Min.Row && p.Row < r.Max.Row &&
		p.Col >= r.Min.Col && p.Col < r.Max.Col
}

// Wrap folds p into the rectangle, each axis taken modulo the span and rebased to Min
func (r Rect) Wrap(p Position) Position {
	return Position{
		Row: wrapAxis(p.Row, r.Min.Row, r.Height()),
		Col: wrapAxis(p.Col, r.Min.Col, r.Width()),
	}
}

func wrapAxis(v, origin, span int) int {
	if span <= 0 {
		return origin
	}
	m := (v - origin) % span
	if m < 0 {
		m += span
	}
	return m + origin
}
