package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/core"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

// TestNewGameValidation verifies undersized boards are rejected
func TestNewGameValidation(t *testing.T) {
	_, err := NewGame(Config{Width: 3, Height: 20})
	if !errors.Is(err, ErrBoardTooSmall) {
		t.Errorf("Expected ErrBoardTooSmall, got %v", err)
	}

	_, err = NewGame(Config{Width: 20, Height: 20, Obstacles: -1})
	if !errors.Is(err, ErrNegativeObstacles) {
		t.Errorf("Expected ErrNegativeObstacles, got %v", err)
	}
}

// TestNewGamePlacesFoodAndWalls verifies the initial board is populated legally
func TestNewGamePlacesFoodAndWalls(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, Obstacles: 10, Seed: 5})
	s := g.Snake(0)

	if !g.Board().Border.Contains(s.Food) {
		t.Errorf("Food %v outside the board", s.Food)
	}
	if s.Occupies(s.Food) {
		t.Errorf("Food %v on the snake", s.Food)
	}
	if g.Board().Walls.Len() != 10 {
		t.Errorf("Expected 10 walls, got %d", g.Board().Walls.Len())
	}
	if g.Board().IsWall(s.Food) {
		t.Errorf("Food %v on a wall", s.Food)
	}
	if g.Snake(1) != nil {
		t.Error("Expected no second snake in single player")
	}
}

// TestSameSeedSameTrajectory verifies placement is reproducible from the seed
func TestSameSeedSameTrajectory(t *testing.T) {
	cfg := Config{Width: 20, Height: 20, Obstacles: 6, Wrap: true, Seed: 42}
	a := newTestGame(t, cfg)
	b := newTestGame(t, cfg)

	turns := map[int]core.Direction{3: core.North, 9: core.West, 15: core.South, 30: core.East, 44: core.North}

	for tick := 0; tick < 300; tick++ {
		if dir, ok := turns[tick%60]; ok {
			a.QueueDirection(0, dir)
			b.QueueDirection(0, dir)
		}

		ra := a.Tick()
		rb := b.Tick()
		if ra != rb {
			t.Fatalf("Tick %d diverged: %+v vs %+v", tick, ra, rb)
		}

		sa, sb := a.Snake(0), b.Snake(0)
		if sa.Head != sb.Head || sa.Food != sb.Food || sa.Score != sb.Score {
			t.Fatalf("Tick %d diverged: head %v/%v food %v/%v", tick, sa.Head, sb.Head, sa.Food, sb.Food)
		}
		if (a.Board().Bonus == nil) != (b.Board().Bonus == nil) {
			t.Fatalf("Tick %d bonus state diverged", tick)
		}
		if ra.Died {
			break
		}
	}
}

// TestRestartReproducesRound verifies a fixed seed rebuilds the same opening board
func TestRestartReproducesRound(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, Obstacles: 4, Seed: 11})
	food := g.Snake(0).Food
	walls := append([]core.Position(nil), g.Board().Walls.Cells()...)

	for i := 0; i < 5; i++ {
		g.Tick()
	}
	g.Snake(0).Dead = true

	g.Restart()

	if g.Frame() != 0 {
		t.Errorf("Expected frame 0 after restart, got %d", g.Frame())
	}
	if g.Snake(0).Dead {
		t.Error("Expected snake alive after restart")
	}
	if g.Snake(0).Food != food {
		t.Errorf("Expected food %v after restart, got %v", food, g.Snake(0).Food)
	}
	got := g.Board().Walls.Cells()
	if len(got) != len(walls) {
		t.Fatalf("Expected %d walls, got %d", len(walls), len(got))
	}
	for i := range walls {
		if got[i] != walls[i] {
			t.Errorf("Wall %d: expected %v, got %v", i, walls[i], got[i])
		}
	}
}

// TestTickFoodRespawn verifies eating triggers a fresh food placement
func TestTickFoodRespawn(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, Seed: 8})
	s := g.Snake(0)
	s.Food = s.Head.Step(core.East)

	res := g.Tick()

	if !res.Ate {
		t.Fatal("Expected Ate")
	}
	if s.Score != 1 || s.Length != constants.InitialSnakeLength+1 {
		t.Errorf("Expected score 1 length %d, got %d/%d", constants.InitialSnakeLength+1, s.Score, s.Length)
	}
	if s.Food == s.Head || s.Occupies(s.Food) {
		t.Errorf("Expected food respawned off the snake, got %v", s.Food)
	}
	if s.FoodEaten {
		t.Error("Expected FoodEaten cleared by respawn")
	}
	if res.Frame != 1 || g.Frame() != 1 {
		t.Errorf("Expected frame 1, got %d", res.Frame)
	}
}

// TestTickBonusEaten verifies bonus consumption during a tick
func TestTickBonusEaten(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, Seed: 8})
	s := g.Snake(0)
	s.Food = core.Position{Row: 0, Col: 0}
	g.Board().Bonus = &BonusFood{Pos: s.Head.Step(core.East), Lifetime: 5}

	res := g.Tick()

	if !res.AteBonus {
		t.Fatal("Expected AteBonus")
	}
	if s.Score != constants.BonusFoodScore {
		t.Errorf("Expected score %d, got %d", constants.BonusFoodScore, s.Score)
	}
	if s.Length != constants.InitialSnakeLength+1 {
		t.Errorf("Expected length %d, got %d", constants.InitialSnakeLength+1, s.Length)
	}
	if g.Board().Bonus != nil {
		t.Error("Expected bonus removed")
	}
}

// TestTickRecordsTurn verifies the committed turn is reported for player one
func TestTickRecordsTurn(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, Seed: 8})
	g.Snake(0).Food = core.Position{Row: 0, Col: 0}

	g.QueueDirection(0, core.North)
	res := g.Tick()
	if !res.Turned || res.Turn != core.North {
		t.Errorf("Expected North turn, got %+v", res)
	}

	res = g.Tick()
	if res.Turned {
		t.Errorf("Expected no turn on an idle tick, got %+v", res)
	}

	if g.QueueDirection(3, core.South) {
		t.Error("Expected unknown player to be ignored")
	}
}

// TestTickStopsAfterDeath verifies the simulation freezes once a snake dies
func TestTickStopsAfterDeath(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, Seed: 8})
	g.Snake(0).Food = core.Position{Row: 0, Col: 0}

	var res TickResult
	for i := 0; i < 20 && !res.Died; i++ {
		res = g.Tick()
	}
	if !res.Died || !g.Over() {
		t.Fatal("Expected death at the east wall")
	}

	frame := g.Frame()
	head := g.Snake(0).Head
	res = g.Tick()
	if !res.Died || g.Frame() != frame || g.Snake(0).Head != head {
		t.Error("Expected ticks after death to be no-ops")
	}
}

// TestTickShrinkKillsOutsideHead verifies the post-shrink border check
func TestTickShrinkKillsOutsideHead(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, ShrinkingBorder: true, Seed: 8})
	g.snakes[0] = NewSnakeAt(20, 20, core.Position{Row: 0, Col: 5}, core.East)
	g.board.PlaceFood(g.snakes, g.rng)

	// Next shrink step moves the top edge down
	g.board.shrinkTimer = constants.ShrinkInterval*4 - 1
	frame := g.Frame()

	res := g.Tick()

	if !res.Shrunk {
		t.Error("Expected border to shrink")
	}
	if !res.Died || !g.Snake(0).Dead {
		t.Error("Expected death with the head outside the shrunk border")
	}
	if g.Frame() != frame {
		t.Errorf("Expected frame unchanged on death, got %d", g.Frame())
	}
}

// TestMultiplayerCrossCollision verifies a head running into the other body is fatal
func TestMultiplayerCrossCollision(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, Multiplayer: true, Seed: 8})
	p1, p2 := g.Snake(0), g.Snake(1)
	if p2 == nil {
		t.Fatal("Expected a second snake")
	}
	if p2.Direction != core.West {
		t.Errorf("Expected player two facing West, got %v", p2.Direction)
	}
	for _, part := range p2.Parts {
		if p1.Occupies(part) {
			t.Fatalf("Players overlap at %v", part)
		}
	}

	for _, s := range g.Snakes() {
		s.Food = core.Position{Row: 0, Col: 0}
	}
	g.Board().Bonus = &BonusFood{Pos: core.Position{Row: 0, Col: 1}, Lifetime: 100}

	// Player one heads down and west into the column player two climbs
	g.QueueDirection(0, core.South)
	g.QueueDirection(1, core.North)
	if res := g.Tick(); res.Died {
		t.Fatal("Unexpected death on tick 1")
	}
	g.QueueDirection(0, core.West)
	if res := g.Tick(); res.Died {
		t.Fatal("Unexpected death on tick 2")
	}
	res := g.Tick()

	if !res.Died {
		t.Fatal("Expected a death on tick 3")
	}
	if !p1.Dead {
		t.Error("Expected player one to die on player two's body")
	}
	if p2.Dead {
		t.Error("Expected player two to survive")
	}
}

// TestBestScore verifies the best score across players
func TestBestScore(t *testing.T) {
	g := newTestGame(t, Config{Width: 20, Height: 20, Multiplayer: true, Seed: 8})
	g.Snake(0).Score = 4
	g.Snake(1).Score = 9

	if g.BestScore() != 9 {
		t.Errorf("Expected best score 9, got %d", g.BestScore())
	}
}
