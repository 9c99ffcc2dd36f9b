package engine

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/core"
)

// Sentinel errors
var (
	ErrBoardTooSmall     = errors.New("board smaller than minimum size")
	ErrNegativeObstacles = errors.New("obstacle count must not be negative")
)

// Config holds the values the simulation consumes
type Config struct {
	Width           int
	Height          int
	Obstacles       int
	Wrap            bool
	Multiplayer     bool
	ShrinkingBorder bool
	Seed            uint64 // 0 selects a time-based seed
}

// Validate checks the configuration can produce a playable board
func (c Config) Validate() error {
	if c.Width < constants.MinBoardSize || c.Height < constants.MinBoardSize {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBoardTooSmall, c.Width, c.Height, constants.MinBoardSize, constants.MinBoardSize)
	}
	if c.Obstacles < 0 {
		return ErrNegativeObstacles
	}
	return nil
}

// TickResult reports what happened during one simulation step
type TickResult struct {
	// Turn is player one's committed direction, Turned is set when it changed this tick
	Turn   core.Direction
	Turned bool

	Ate      bool
	AteBonus bool
	Shrunk   bool
	Died     bool
	Frame    int
}

// Game sequences one or two snakes against a board, one tick at a time
// All methods must be called from a single goroutine
type Game struct {
	cfg    Config
	rng    *RNG
	board  *Board
	snakes []*Snake
	frame  int
}

// NewGame creates a session and places initial food and obstacles
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		rng:   NewRNG(cfg.Seed),
		board: NewBoard(cfg.Width, cfg.Height),
	}

	g.snakes = append(g.snakes, NewSnake(cfg.Width, cfg.Height))
	if cfg.Multiplayer {
		g.snakes = append(g.snakes, NewSnakeAt(cfg.Width, cfg.Height, SecondPlayerTail(cfg.Width, cfg.Height), core.West))
	}

	g.populate()
	return g, nil
}

// SecondPlayerTail returns the spawn tail for player two: two rows below player one,
// laid out westward so the bodies start side by side without overlapping
func SecondPlayerTail(width, height int) core.Position {
	row := height/2 + 2
	if row >= height {
		row = height - 1
	}
	return core.Position{Row: row, Col: width/2 + constants.InitialSnakeLength/2}
}

// populate places food then walls, the order replays depend on
func (g *Game) populate() {
	if !g.board.PlaceFood(g.snakes, g.rng) {
		log.WithField("frame", g.frame).Warn("no free cell for food")
	}

	if g.cfg.Obstacles > 0 {
		placed := g.board.PlaceWalls(g.cfg.Obstacles, g.snakes, g.rng)
		if placed < g.cfg.Obstacles {
			log.WithFields(log.Fields{
				"requested": g.cfg.Obstacles,
				"placed":    placed,
			}).Warn("board too crowded for all obstacles")
		}
	}
}

// Restart resets snakes and board for a new round and reseeds the random source from the
// configured seed, so a fixed seed yields the same round every time
func (g *Game) Restart() {
	g.rng.Reseed(g.cfg.Seed)
	for _, s := range g.snakes {
		s.Reset()
	}
	g.board.Reset()
	g.board.Walls.Clear()
	g.frame = 0
	g.populate()
}

// QueueDirection buffers a turn for player (0-based); unknown players are ignored
func (g *Game) QueueDirection(player int, dir core.Direction) bool {
	if player < 0 || player >= len(g.snakes) {
		return false
	}
	return g.snakes[player].QueueDirection(dir)
}

// Tick advances the simulation by one step:
// turn commit, movement, cross collision, food respawn, bonus, border shrink, frame count.
// Once any snake is dead further ticks are no-ops reporting Died
func (g *Game) Tick() TickResult {
	var res TickResult
	if g.Over() {
		res.Died = true
		res.Frame = g.frame
		return res
	}

	for i, s := range g.snakes {
		dir, turned := s.ApplyQueuedInput()
		if i == 0 {
			res.Turn, res.Turned = dir, turned
		}
	}

	border := g.board.Border
	for _, s := range g.snakes {
		s.UpdateMovement(g.board, border, g.cfg.Wrap)
	}
	if len(g.snakes) > 1 {
		ResolveCrossCollisions(g.snakes)
	}
	if g.Over() {
		res.Died = true
		res.Frame = g.frame
		return res
	}

	for _, s := range g.snakes {
		if s.FoodEaten {
			res.Ate = true
		}
	}
	if res.Ate && !g.board.PlaceFood(g.snakes, g.rng) {
		log.WithField("frame", g.frame).Warn("no free cell for food")
	}

	g.board.MaybeSpawnBonus(g.snakes, g.rng)
	g.board.TickBonus()
	for _, s := range g.snakes {
		if g.board.CheckBonusEaten(s) {
			res.AteBonus = true
			break
		}
	}

	if g.cfg.ShrinkingBorder {
		res.Shrunk = g.board.UpdateShrinkingBorder()
		for _, s := range g.snakes {
			if !g.board.Border.Contains(s.Head) {
				s.Dead = true
				res.Died = true
			}
		}
		if res.Died {
			res.Frame = g.frame
			return res
		}
	}

	g.frame++
	res.Frame = g.frame
	return res
}

// Over reports whether any snake has died
func (g *Game) Over() bool {
	for _, s := range g.snakes {
		if s.Dead {
			return true
		}
	}
	return false
}

// BestScore returns the highest score among the snakes
func (g *Game) BestScore() int {
	best := 0
	for _, s := range g.snakes {
		best = max(best, s.Score)
	}
	return best
}

// Board returns the board, read-only for callers outside the tick
func (g *Game) Board() *Board {
	return g.board
}

// Snakes returns all snakes, player one first
func (g *Game) Snakes() []*Snake {
	return g.snakes
}

// Snake returns the snake for player (0-based) or nil
func (g *Game) Snake(player int) *Snake {
	if player < 0 || player >= len(g.snakes) {
		return nil
	}
	return g.snakes[player]
}

// Frame returns the number of completed ticks this round
func (g *Game) Frame() int {
	return g.frame
}

// Seed returns the effective seed of the current round
func (g *Game) Seed() uint64 {
	return g.rng.Seed()
}

// Config returns the session configuration
func (g *Game) Config() Config {
	return g.cfg
}
