package constants

import "time"

// Game Loop Timing Constants
const (
	// DefaultTickInterval is the delay between simulation ticks when no speed is configured
	DefaultTickInterval = 200 * time.Millisecond

	// MinTickInterval bounds the maximum speed reached through progressive speed
	MinTickInterval = 50 * time.Millisecond

	// ProgressiveSpeedStep is removed from the tick interval per segment grown past the initial length
	ProgressiveSpeedStep = 5 * time.Millisecond

	// InputPollInterval is the granularity of input waits between ticks
	InputPollInterval = 10 * time.Millisecond

	// PausedRedrawInterval is how often the paused frame is redrawn
	PausedRedrawInterval = 50 * time.Millisecond
)

// Death and Game Over Timing
const (
	// DeathFlashFrames is the number of frames in the death flash animation
	DeathFlashFrames = 6

	// DeathFlashInterval is the delay between death flash frames
	DeathFlashInterval = 150 * time.Millisecond

	// AutoRestartDelay is how long the game over banner stays up before an automatic restart
	AutoRestartDelay = time.Second

	// MenuPollInterval is the input wait used by menu and game over screens
	MenuPollInterval = 100 * time.Millisecond
)

// Board Dimensions
const (
	// DefaultMapWidth is used when the terminal size cannot be detected
	DefaultMapWidth = 20

	// DefaultMapHeight is used when the terminal size cannot be detected
	DefaultMapHeight = 20

	// MinAutoMapSize and the max values clamp dimensions derived from the terminal
	MinAutoMapSize   = 10
	MaxAutoMapWidth  = 40
	MaxAutoMapHeight = 30

	// AutoMapColumnMargin and AutoMapRowMargin are reserved around the map for score and banners
	AutoMapColumnMargin = 4
	AutoMapRowMargin    = 6

	// MinBoardSize is the smallest accepted width or height
	MinBoardSize = 6
)
