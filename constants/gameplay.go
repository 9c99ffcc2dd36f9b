package constants

// Snake
const (
	// InitialSnakeLength is the number of segments a snake spawns and resets with
	InitialSnakeLength = 3

	// TurnQueueCapacity bounds how many turns can be buffered ahead of application
	TurnQueueCapacity = 3

	// FoodScore is awarded for regular food
	FoodScore = 1
)

// Bonus Food
const (
	// BonusFoodScore is awarded when a bonus is eaten
	BonusFoodScore = 3

	// BonusFoodLifetime is the number of ticks a bonus stays on the board
	BonusFoodLifetime = 30

	// BonusSpawnChance is the denominator of the per-tick spawn roll (1 in N)
	BonusSpawnChance = 20

	// BonusSpawnAttempts caps random placement tries for a bonus in a single tick
	BonusSpawnAttempts = 50
)

// Shrinking Border
const (
	// ShrinkInterval is the number of ticks between border shrink steps
	ShrinkInterval = 50

	// MinBorderSize is the floor for both dimensions of the active border
	MinBorderSize = 6
)

// Placement
const (
	// MinPlacementAttempts is the lower bound for random placement tries before falling back to a scan
	MinPlacementAttempts = 1000

	// PlacementAttemptsPerCell scales the random try budget with board area
	PlacementAttemptsPerCell = 4
)
