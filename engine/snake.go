package engine

import (
	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/core"
)

// NoFood marks a snake without a food target
var NoFood = core.Position{Row: -1, Col: -1}

// Snake owns its body segments, occupancy grid and turn queue
// Parts is ordered tail first, head last; Head always equals the last part
type Snake struct {
	Parts     []core.Position
	Head      core.Position
	Direction core.Direction
	Food      core.Position
	FoodEaten bool // true only on the tick the head landed on Food
	Dead      bool
	Length    int
	Score     int

	queue []core.Direction
	grid  *OccupancyGrid

	// Growth owed by bonus food, paid by skipping tail removal
	pendingGrowth int

	spawnTail core.Position
	spawnDir  core.Direction
}

// NewSnake creates a snake laid out horizontally in the centre of a width x height board, facing East
func NewSnake(width, height int) *Snake {
	tail := core.Position{
		Row: height / 2,
		Col: width/2 - constants.InitialSnakeLength/2,
	}
	return NewSnakeAt(width, height, tail, core.East)
}

// NewSnakeAt creates a snake whose initial body starts at tail and extends towards dir
// Reset restores this same layout
func NewSnakeAt(width, height int, tail core.Position, dir core.Direction) *Snake {
	s := &Snake{
		grid:      NewOccupancyGrid(width, height),
		queue:     make([]core.Direction, 0, constants.TurnQueueCapacity),
		Parts:     make([]core.Position, 0, constants.InitialSnakeLength*4),
		spawnTail: tail,
		spawnDir:  dir,
	}
	s.Reset()
	return s
}

// Reset clears queue, score, death flag, occupancy and body, then re-lays the spawn layout
func (s *Snake) Reset() {
	s.Direction = s.spawnDir
	s.queue = s.queue[:0]
	s.Food = NoFood
	s.FoodEaten = false
	s.Dead = false
	s.Length = constants.InitialSnakeLength
	s.Score = 0
	s.pendingGrowth = 0

	s.grid.Clear()
	s.Parts = s.Parts[:0]

	pos := s.spawnTail
	for i := 0; i < constants.InitialSnakeLength; i++ {
		s.Parts = append(s.Parts, pos)
		s.grid.Inc(pos)
		pos = pos.Step(s.spawnDir)
	}
	s.Head = s.Parts[len(s.Parts)-1]
}

// QueueDirection buffers a turn for a later tick
// The turn is dropped when the queue is full, or when it repeats or reverses the last
// queued direction (the committed direction if the queue is empty)
func (s *Snake) QueueDirection(dir core.Direction) bool {
	if len(s.queue) >= constants.TurnQueueCapacity {
		return false
	}

	last := s.Direction
	if n := len(s.queue); n > 0 {
		last = s.queue[n-1]
	}
	if dir == last || dir == last.Opposite() {
		return false
	}

	s.queue = append(s.queue, dir)
	return true
}

// PendingTurns returns the number of buffered turns
func (s *Snake) PendingTurns() int {
	return len(s.queue)
}

// ApplyQueuedInput commits at most one buffered turn
// Returns the committed direction and whether the heading changed
func (s *Snake) ApplyQueuedInput() (core.Direction, bool) {
	if len(s.queue) == 0 {
		return s.Direction, false
	}

	next := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]

	if next == s.Direction.Opposite() || next == s.Direction {
		return s.Direction, false
	}
	s.Direction = next
	return next, true
}

// UpdateMovement advances the head one cell along the committed direction
// With wrap disabled, leaving border is fatal; with wrap enabled the head re-enters on the
// opposite edge of border. Walls are fatal in both modes
func (s *Snake) UpdateMovement(walls Obstacles, border core.Rect, wrap bool) {
	if s.Dead {
		return
	}

	next := s.Head.Step(s.Direction)
	if wrap {
		next = border.Wrap(next)
	} else if !border.Contains(next) {
		s.Dead = true
		return
	}

	if walls != nil && walls.IsWall(next) {
		s.Dead = true
		return
	}
	if !s.grid.InBounds(next) {
		s.Dead = true
		return
	}

	s.Head = next
	s.Parts = append(s.Parts, next)

	s.FoodEaten = next == s.Food
	switch {
	case s.FoodEaten:
		s.Length++
		s.Score += constants.FoodScore
	case s.pendingGrowth > 0:
		s.pendingGrowth--
	default:
		tail := s.Parts[0]
		s.Parts = s.Parts[1:]
		s.grid.Dec(tail)
	}

	if s.grid.Inc(next) > 1 {
		s.Dead = true
	}
}

// Grow adds n length units; the body catches up over the next n moves
func (s *Snake) Grow(n int) {
	if n <= 0 {
		return
	}
	s.Length += n
	s.pendingGrowth += n
}

// Occupies reports whether any segment lies on p
func (s *Snake) Occupies(p core.Position) bool {
	return s.grid.Count(p) > 0
}

// ResolveCrossCollisions kills every snake whose head lies on another snake's body
// Deaths are decided before any flag is set so a head-on meeting kills both
func ResolveCrossCollisions(snakes []*Snake) {
	hit := make([]bool, len(snakes))
	for i, s := range snakes {
		for j, other := range snakes {
			if i != j && other.Occupies(s.Head) {
				hit[i] = true
			}
		}
	}

	for i, h := range hit {
		if h {
			snakes[i].Dead = true
		}
	}
}
