package constants

// Glyph defaults
const (
	DefaultBodyGlyph  = '@'
	DefaultFoodGlyph  = '*'
	DefaultHeadWest   = '<'
	DefaultHeadNorth  = '^'
	DefaultHeadEast   = '>'
	DefaultHeadSouth  = 'v'
	BonusFoodGlyph    = '$'
	WallGlyph         = '#'
	EmptyGlyph        = '.'
	DeadHeadGlyph     = 'X'
	CellScreenWidth   = 2 // glyph plus spacer column
	ScoreLineHeight   = 1
	BonusBlinkDivisor = 3 // bonus alternates color every N frames
)

// Text
const (
	GameTitle      = "SNAKE - Terminal Edition"
	PauseMessage   = "** PAUSED - press P or Space to resume **"
	ReplayMessage  = "REPLAY - press Q to exit"
	GameOverHint   = "Press 'r' to restart, 'm' for menu, or 'q' to quit"
	MenuHint       = "Use W/S or arrows to select, Enter to confirm"
	ReplayDoneHint = "Press any key to exit"
)
