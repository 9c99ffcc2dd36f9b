package engine

import (
	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/core"
)

// BonusFood is a transient high-value food item
type BonusFood struct {
	Pos      core.Position
	Lifetime int // ticks remaining
}

// Board owns the map geometry: walls, the active border and bonus food
type Board struct {
	Width  int
	Height int
	Walls  *WallSet
	Border core.Rect // active playable rectangle, shrinks toward the centre
	Bonus  *BonusFood

	shrinkTimer int
}

// NewBoard creates an empty board with the full border active
func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		Walls:  NewWallSet(),
		Border: core.NewRect(height, width),
	}
}

// Reset restores the full border, shrink timer and removes bonus food
// Walls are left to the caller, which re-places them for a new session
func (b *Board) Reset() {
	b.Border = core.NewRect(b.Height, b.Width)
	b.shrinkTimer = 0
	b.Bonus = nil
}

// IsWall reports whether p is a wall
func (b *Board) IsWall(p core.Position) bool {
	return b.Walls.IsWall(p)
}

// ShrinkTimer returns the number of shrink timer ticks elapsed
func (b *Board) ShrinkTimer() int {
	return b.shrinkTimer
}

// PlaceFood samples a free cell inside the active border and assigns it as every snake's food
// Random sampling is bounded; past the budget the free cells are enumerated and one is drawn.
// Returns false, leaving NoFood assigned, only when the border has no free cell
func (b *Board) PlaceFood(snakes []*Snake, rng Rand) bool {
	free := func(p core.Position) bool {
		return !b.IsWall(p) && !occupiedByAny(snakes, p)
	}

	p, ok := b.pickCell(b.Border, free, b.placementAttempts(), rng)
	if !ok {
		p = NoFood
	}
	for _, s := range snakes {
		s.Food = p
		s.FoodEaten = false
	}
	return ok
}

// PlaceWalls clears existing walls then places count distinct walls anywhere on the board,
// avoiding snake bodies, food cells and previous walls. Returns the number placed,
// which is less than count only when the board runs out of free cells
func (b *Board) PlaceWalls(count int, snakes []*Snake, rng Rand) int {
	b.Walls.Clear()

	free := func(p core.Position) bool {
		return !b.IsWall(p) && !occupiedByAny(snakes, p) && !isFood(snakes, p)
	}

	full := core.NewRect(b.Height, b.Width)
	attempts := b.placementAttempts()
	for i := 0; i < count; i++ {
		p, ok := b.pickCell(full, free, attempts, rng)
		if !ok {
			return b.Walls.Len()
		}
		b.Walls.Add(p)
	}
	return b.Walls.Len()
}

// MaybeSpawnBonus rolls a 1-in-BonusSpawnChance chance when no bonus is active and tries
// a bounded number of placements inside the active border. Returns true if a bonus spawned
func (b *Board) MaybeSpawnBonus(snakes []*Snake, rng Rand) bool {
	if b.Bonus != nil {
		return false
	}
	if rng.Intn(constants.BonusSpawnChance) != 0 {
		return false
	}

	for i := 0; i < constants.BonusSpawnAttempts; i++ {
		p := sampleCell(b.Border, rng)
		if b.IsWall(p) || occupiedByAny(snakes, p) || isFood(snakes, p) {
			continue
		}
		b.Bonus = &BonusFood{Pos: p, Lifetime: constants.BonusFoodLifetime}
		return true
	}
	return false
}

// TickBonus ages the active bonus and removes it once its lifetime runs out
func (b *Board) TickBonus() {
	if b.Bonus == nil {
		return
	}
	if b.Bonus.Lifetime > 0 {
		b.Bonus.Lifetime--
	}
	if b.Bonus.Lifetime == 0 {
		b.Bonus = nil
	}
}

// CheckBonusEaten awards the bonus to s if its head is on it
func (b *Board) CheckBonusEaten(s *Snake) bool {
	if b.Bonus == nil || s.Dead || s.Head != b.Bonus.Pos {
		return false
	}

	s.Score += constants.BonusFoodScore
	s.Grow(1)
	b.Bonus = nil
	return true
}

// UpdateShrinkingBorder advances the shrink timer; every ShrinkInterval ticks one edge moves
// inward by one cell, cycling min-row, max-col, max-row, min-col, never below MinBorderSize.
// Walls left outside the new border are discarded. Returns true if the border changed.
// Killing a snake whose head is now outside is the caller's job
func (b *Board) UpdateShrinkingBorder() bool {
	b.shrinkTimer++
	if b.shrinkTimer%constants.ShrinkInterval != 0 {
		return false
	}

	minR, minC := b.Border.Min.Row, b.Border.Min.Col
	maxR, maxC := b.Border.Max.Row, b.Border.Max.Col
	if maxR-minR <= constants.MinBorderSize || maxC-minC <= constants.MinBorderSize {
		return false
	}

	before := b.Border
	switch (b.shrinkTimer / constants.ShrinkInterval) % 4 {
	case 0:
		b.Border.Min.Row = min(minR+1, maxR-constants.MinBorderSize)
	case 1:
		b.Border.Max.Col = max(maxC-1, minC+constants.MinBorderSize)
	case 2:
		b.Border.Max.Row = max(maxR-1, minR+constants.MinBorderSize)
	case 3:
		b.Border.Min.Col = min(minC+1, maxC-constants.MinBorderSize)
	}

	b.Walls.Retain(b.Border.Contains)
	return b.Border != before
}

// placementAttempts scales the random try budget with board area
func (b *Board) placementAttempts() int {
	return max(constants.MinPlacementAttempts, constants.PlacementAttemptsPerCell*b.Width*b.Height)
}

// pickCell draws random cells in area until free accepts one; after attempts misses it
// enumerates the free cells and draws among them so placement always terminates
func (b *Board) pickCell(area core.Rect, free func(core.Position) bool, attempts int, rng Rand) (core.Position, bool) {
	if area.Height() <= 0 || area.Width() <= 0 {
		return NoFood, false
	}

	for i := 0; i < attempts; i++ {
		p := sampleCell(area, rng)
		if free(p) {
			return p, true
		}
	}

	var candidates []core.Position
	for r := area.Min.Row; r < area.Max.Row; r++ {
		for c := area.Min.Col; c < area.Max.Col; c++ {
			p := core.Position{Row: r, Col: c}
			if free(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return NoFood, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// sampleCell draws a uniform cell inside area
func sampleCell(area core.Rect, rng Rand) core.Position {
	return core.Position{
		Row: area.Min.Row + rng.Intn(area.Height()),
		Col: area.Min.Col + rng.Intn(area.Width()),
	}
}

func occupiedByAny(snakes []*Snake, p core.Position) bool {
	for _, s := range snakes {
		if s.Occupies(p) {
			return true
		}
	}
	return false
}

func isFood(snakes []*Snake, p core.Position) bool {
	for _, s := range snakes {
		if s.Food == p {
			return true
		}
	}
	return false
}
