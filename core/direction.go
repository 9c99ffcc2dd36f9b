package core

// Direction is a 4-way compass heading
type Direction uint8

const (
	West Direction = iota
	North
	East
	South
)

// Directions lists all headings in declaration order
var Directions = [4]Direction{West, North, East, South}

// Opposite returns the reverse heading, W<->E and N<->S
func (d Direction) Opposite() Direction {
	switch d {
	case West:
		return East
	case East:
		return West
	case North:
		return South
	default:
		return North
	}
}

// Delta returns the unit (row, col) step for the heading
// North decreases row, South increases row, West decreases col, East increases col
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case West:
		return 0, -1
	case North:
		return -1, 0
	case East:
		return 0, 1
	default:
		return 1, 0
	}
}

// String returns the heading name
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-letter form used in replay files
func (d Direction) Symbol() byte {
	switch d {
	case West:
		return 'W'
	case North:
		return 'N'
	case East:
		return 'E'
	default:
		return 'S'
	}
}

// ParseSymbol decodes a replay symbol, ok is false for anything but N, S, E or W
func ParseSymbol(s string) (d Direction, ok bool) {
	switch s {
	case "N":
		return North, true
	case "S":
		return South, true
	case "E":
		return East, true
	case "W":
		return West, true
	}
	return 0, false
}
