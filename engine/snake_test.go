package engine

import (
	"testing"

	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/core"
)

// TestSnakeInitialLayout verifies a fresh snake is centred, alive and facing East
func TestSnakeInitialLayout(t *testing.T) {
	s := NewSnake(20, 20)

	if len(s.Parts) != constants.InitialSnakeLength {
		t.Fatalf("Expected %d parts, got %d", constants.InitialSnakeLength, len(s.Parts))
	}
	if s.Length != constants.InitialSnakeLength {
		t.Errorf("Expected length %d, got %d", constants.InitialSnakeLength, s.Length)
	}
	if s.Dead {
		t.Error("Expected fresh snake to be alive")
	}
	if s.Direction != core.East {
		t.Errorf("Expected East, got %v", s.Direction)
	}

	want := []core.Position{{Row: 10, Col: 9}, {Row: 10, Col: 10}, {Row: 10, Col: 11}}
	for i, p := range want {
		if s.Parts[i] != p {
			t.Errorf("Part %d: expected %v, got %v", i, p, s.Parts[i])
		}
	}
	assertInvariants(t, s)
}

// TestSnakeReset verifies reset restores the spawn state regardless of prior state
func TestSnakeReset(t *testing.T) {
	s := NewSnake(20, 20)
	s.Score = 10
	s.Length = 15
	s.Dead = true
	s.QueueDirection(core.North)
	s.Grow(3)
	s.UpdateMovement(nil, fullBorder(20, 20), false)

	s.Reset()

	if s.Length != constants.InitialSnakeLength {
		t.Errorf("Expected length %d after reset, got %d", constants.InitialSnakeLength, s.Length)
	}
	if s.Score != 0 {
		t.Errorf("Expected score 0 after reset, got %d", s.Score)
	}
	if s.Dead {
		t.Error("Expected alive after reset")
	}
	if s.PendingTurns() != 0 {
		t.Errorf("Expected empty turn queue after reset, got %d", s.PendingTurns())
	}
	if s.Direction != core.East {
		t.Errorf("Expected East after reset, got %v", s.Direction)
	}
	assertInvariants(t, s)

	// Pending growth is cleared too: the next move must drop the tail
	s.UpdateMovement(nil, fullBorder(20, 20), false)
	if len(s.Parts) != constants.InitialSnakeLength {
		t.Errorf("Expected %d parts after move, got %d", constants.InitialSnakeLength, len(s.Parts))
	}
}

// TestSnakeResetKeepsSpawnLayout verifies a custom layout survives reset
func TestSnakeResetKeepsSpawnLayout(t *testing.T) {
	tail := SecondPlayerTail(20, 20)
	s := NewSnakeAt(20, 20, tail, core.West)
	first := append([]core.Position(nil), s.Parts...)

	s.UpdateMovement(nil, fullBorder(20, 20), false)
	s.Reset()

	if s.Direction != core.West {
		t.Errorf("Expected West after reset, got %v", s.Direction)
	}
	for i := range first {
		if s.Parts[i] != first[i] {
			t.Errorf("Part %d: expected %v, got %v", i, first[i], s.Parts[i])
		}
	}
}

// TestQueueDirection verifies the turn queue filters repeats, reversals and overflow
func TestQueueDirection(t *testing.T) {
	s := NewSnake(20, 20)

	// Opposite of the current direction with an empty queue
	if s.QueueDirection(core.West) {
		t.Error("Expected West to be rejected while facing East")
	}
	if s.PendingTurns() != 0 {
		t.Errorf("Expected empty queue, got %d", s.PendingTurns())
	}

	// Same as the current direction
	s.QueueDirection(core.East)
	if s.PendingTurns() != 0 {
		t.Errorf("Expected current direction to be rejected, got %d queued", s.PendingTurns())
	}

	s.QueueDirection(core.North)
	if s.PendingTurns() != 1 {
		t.Fatalf("Expected 1 queued turn, got %d", s.PendingTurns())
	}

	// Duplicate of the last queued turn
	s.QueueDirection(core.North)
	if s.PendingTurns() != 1 {
		t.Errorf("Expected duplicate to be dropped, got %d queued", s.PendingTurns())
	}

	// Reversal of the last queued turn, even though it is legal against the current heading
	s.QueueDirection(core.South)
	if s.PendingTurns() != 1 {
		t.Errorf("Expected reversal of queued turn to be dropped, got %d queued", s.PendingTurns())
	}

	s.QueueDirection(core.East)
	s.QueueDirection(core.North)
	if s.PendingTurns() != constants.TurnQueueCapacity {
		t.Fatalf("Expected full queue of %d, got %d", constants.TurnQueueCapacity, s.PendingTurns())
	}

	// Overflow
	if s.QueueDirection(core.West) {
		t.Error("Expected queue overflow to be rejected")
	}

	wantOrder := []core.Direction{core.North, core.East, core.North}
	for i, want := range wantOrder {
		got, changed := s.ApplyQueuedInput()
		if got != want || !changed {
			t.Errorf("Apply %d: expected %v changed, got %v changed=%v", i, want, got, changed)
		}
	}

	if _, changed := s.ApplyQueuedInput(); changed {
		t.Error("Expected no change from empty queue")
	}
}

// TestApplyQueuedInputRejectsReversal verifies the apply-time guard against 180 degree turns
func TestApplyQueuedInputRejectsReversal(t *testing.T) {
	s := NewSnake(20, 20)
	s.queue = append(s.queue, core.West)

	dir, changed := s.ApplyQueuedInput()
	if changed || dir != core.East || s.Direction != core.East {
		t.Errorf("Expected reversal to be discarded, got %v changed=%v", dir, changed)
	}
	if s.PendingTurns() != 0 {
		t.Errorf("Expected reversal to be consumed, %d left", s.PendingTurns())
	}
}

// TestMovementEast verifies a single step east with nothing in the way
func TestMovementEast(t *testing.T) {
	s := NewSnake(20, 20)
	before := s.Head

	s.ApplyQueuedInput()
	s.UpdateMovement(nil, fullBorder(20, 20), false)

	if s.Head.Row != before.Row || s.Head.Col != before.Col+1 {
		t.Errorf("Expected head at (%d,%d), got %v", before.Row, before.Col+1, s.Head)
	}
	if s.Dead {
		t.Error("Expected snake alive after a free move")
	}
	if s.FoodEaten {
		t.Error("Expected FoodEaten false without food")
	}
	if len(s.Parts) != constants.InitialSnakeLength {
		t.Errorf("Expected body size unchanged, got %d", len(s.Parts))
	}
	assertInvariants(t, s)
}

// TestMovementIntoWall verifies a wall directly ahead is fatal
func TestMovementIntoWall(t *testing.T) {
	s := NewSnake(20, 20)
	walls := NewWallSet()
	walls.Add(s.Head.Step(core.East))
	head := s.Head

	s.UpdateMovement(walls, fullBorder(20, 20), false)

	if !s.Dead {
		t.Error("Expected death when moving into a wall")
	}
	if s.Head != head {
		t.Errorf("Expected head to stay at %v, got %v", head, s.Head)
	}
}

// TestMovementBorderDeath verifies leaving the board without wrap is fatal
func TestMovementBorderDeath(t *testing.T) {
	s := NewSnake(20, 20)
	border := fullBorder(20, 20)

	steps := 0
	for i := 0; i < 20 && !s.Dead; i++ {
		s.UpdateMovement(nil, border, false)
		steps++
	}

	if !s.Dead {
		t.Fatal("Expected death at the east edge")
	}
	// Head starts at column 11; columns 12..19 are safe, the ninth step leaves the board
	if steps != 9 {
		t.Errorf("Expected death on step 9, got %d", steps)
	}
	if s.Head.Col != 19 {
		t.Errorf("Expected head to remain on the last column, got %v", s.Head)
	}
}

// TestMovementWrapAround verifies wrap mode never kills at the edge
func TestMovementWrapAround(t *testing.T) {
	s := NewSnake(20, 20)
	border := fullBorder(20, 20)

	for i := 0; i < 20; i++ {
		s.UpdateMovement(nil, border, true)
		if s.Dead {
			t.Fatalf("Unexpected death on wrap step %d", i+1)
		}
		if i == 8 && s.Head.Col != 0 {
			t.Errorf("Expected head to re-enter at column 0, got %v", s.Head)
		}
		assertInvariants(t, s)
	}

	if s.Head != (core.Position{Row: 10, Col: 11}) {
		t.Errorf("Expected full lap back to (10,11), got %v", s.Head)
	}
}

// TestMovementWrapRespectsShrunkBorder verifies wrapping uses the active border span
func TestMovementWrapRespectsShrunkBorder(t *testing.T) {
	s := NewSnake(20, 20)
	border := core.Rect{Min: core.Position{Row: 2, Col: 3}, Max: core.Position{Row: 18, Col: 13}}

	s.UpdateMovement(nil, border, true) // (10,12)
	s.UpdateMovement(nil, border, true) // wraps to (10,3)

	if s.Dead {
		t.Fatal("Unexpected death while wrapping")
	}
	if s.Head != (core.Position{Row: 10, Col: 3}) {
		t.Errorf("Expected head at (10,3), got %v", s.Head)
	}

	// Without wrap the same border edge is fatal
	s2 := NewSnake(20, 20)
	s2.UpdateMovement(nil, border, false)
	s2.UpdateMovement(nil, border, false)
	if !s2.Dead {
		t.Error("Expected death at shrunk border without wrap")
	}
}

// TestMovementEatsFood verifies food growth and scoring
func TestMovementEatsFood(t *testing.T) {
	s := NewSnake(20, 20)
	oldLength := s.Length
	s.Food = s.Head.Step(core.East)

	s.UpdateMovement(nil, fullBorder(20, 20), false)

	if !s.FoodEaten {
		t.Error("Expected FoodEaten after landing on food")
	}
	if s.Length != oldLength+1 {
		t.Errorf("Expected length %d, got %d", oldLength+1, s.Length)
	}
	if s.Score != 1 {
		t.Errorf("Expected score 1, got %d", s.Score)
	}
	if len(s.Parts) != oldLength+1 {
		t.Errorf("Expected body to keep its tail, got %d parts", len(s.Parts))
	}
	assertInvariants(t, s)

	// Flag lasts exactly one tick
	s.UpdateMovement(nil, fullBorder(20, 20), false)
	if s.FoodEaten {
		t.Error("Expected FoodEaten to clear on the next tick")
	}
}

// TestSelfCollision verifies turning into the body is fatal
func TestSelfCollision(t *testing.T) {
	s := NewSnake(20, 20)
	border := fullBorder(20, 20)
	s.Grow(2)

	s.UpdateMovement(nil, border, false)
	s.UpdateMovement(nil, border, false)
	if len(s.Parts) != 5 {
		t.Fatalf("Expected 5 parts after growth, got %d", len(s.Parts))
	}

	for _, dir := range []core.Direction{core.North, core.West, core.South} {
		s.QueueDirection(dir)
		s.ApplyQueuedInput()
		s.UpdateMovement(nil, border, false)
	}

	if !s.Dead {
		t.Error("Expected death after turning into the body")
	}
	if s.grid.Count(s.Head) < 2 {
		t.Errorf("Expected overlapping count at %v, got %d", s.Head, s.grid.Count(s.Head))
	}
}

// TestChasingTailIsSafe verifies the head may enter the cell the tail leaves in the same tick
func TestChasingTailIsSafe(t *testing.T) {
	s := NewSnake(20, 20)
	border := fullBorder(20, 20)
	s.Grow(1)
	s.UpdateMovement(nil, border, false)

	for _, dir := range []core.Direction{core.North, core.West, core.South} {
		s.QueueDirection(dir)
		s.ApplyQueuedInput()
		s.UpdateMovement(nil, border, false)
	}

	if s.Dead {
		t.Error("Expected moving into the vacated tail cell to be safe")
	}
	assertInvariants(t, s)
}

// TestGrowPaysOutOverMoves verifies bonus growth keeps body and occupancy in sync
func TestGrowPaysOutOverMoves(t *testing.T) {
	s := NewSnake(20, 20)
	s.Grow(1)

	if s.Length != constants.InitialSnakeLength+1 {
		t.Errorf("Expected length to grow immediately, got %d", s.Length)
	}
	if len(s.Parts) != constants.InitialSnakeLength {
		t.Errorf("Expected body unchanged until next move, got %d", len(s.Parts))
	}

	s.UpdateMovement(nil, fullBorder(20, 20), false)
	if len(s.Parts) != constants.InitialSnakeLength+1 {
		t.Errorf("Expected body to catch up, got %d parts", len(s.Parts))
	}
	assertInvariants(t, s)

	s.UpdateMovement(nil, fullBorder(20, 20), false)
	if len(s.Parts) != constants.InitialSnakeLength+1 {
		t.Errorf("Expected growth paid once, got %d parts", len(s.Parts))
	}
}

// TestDeadSnakeDoesNotMove verifies death is terminal
func TestDeadSnakeDoesNotMove(t *testing.T) {
	s := NewSnake(20, 20)
	s.Dead = true
	head := s.Head

	s.UpdateMovement(nil, fullBorder(20, 20), false)
	if s.Head != head {
		t.Errorf("Expected dead snake to stay at %v, got %v", head, s.Head)
	}
}

// TestResolveCrossCollisions verifies head-vs-body checks between two snakes
func TestResolveCrossCollisions(t *testing.T) {
	a := NewSnake(20, 20)
	b := NewSnakeAt(20, 20, core.Position{Row: 12, Col: 11}, core.North)

	// b runs (12,11),(11,11),(10,11): its head lands on a's head cell
	ResolveCrossCollisions([]*Snake{a, b})
	if !a.Dead || !b.Dead {
		t.Errorf("Expected head-on meeting to kill both, got a=%v b=%v", a.Dead, b.Dead)
	}

	c := NewSnake(20, 20)
	d := NewSnakeAt(20, 20, core.Position{Row: 12, Col: 10}, core.North)
	// d's head (10,10) lies on c's middle segment, c's head is clear
	ResolveCrossCollisions([]*Snake{c, d})
	if c.Dead {
		t.Error("Expected c to survive")
	}
	if !d.Dead {
		t.Error("Expected d to die on c's body")
	}
}
