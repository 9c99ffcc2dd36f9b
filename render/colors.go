package render

import (
	"github.com/gdamore/tcell/v2"
)

// Board colors
var (
	ColorEmpty = tcell.ColorDarkGray
	ColorWall  = tcell.ColorWhite
	ColorFood  = tcell.ColorRed

	// Indexed by player
	ColorBody = [...]tcell.Color{tcell.ColorGreen, tcell.ColorDarkCyan}
	ColorHead = [...]tcell.Color{tcell.ColorYellow, tcell.ColorFuchsia}

	// Bonus food alternates between these
	ColorBonusA = tcell.ColorFuchsia
	ColorBonusB = tcell.ColorYellow

	// Death flash alternates between these
	ColorFlashA = tcell.ColorRed
	ColorFlashB = tcell.ColorMaroon
)

// Text colors
var (
	ColorTitle     = tcell.ColorGreen
	ColorScore     = tcell.ColorWhite
	ColorBanner    = tcell.ColorYellow
	ColorGameOver  = tcell.ColorRed
	ColorHighScore = tcell.ColorOlive
	ColorValue     = tcell.ColorDarkCyan
	ColorSelected  = tcell.ColorYellow
	ColorItem      = tcell.ColorWhite
	ColorHint      = tcell.ColorGray
)

// BonusColor returns the blink color for frame
func BonusColor(frame, divisor int) tcell.Color {
	if divisor <= 0 {
		divisor = 1
	}
	if (frame/divisor)%2 == 0 {
		return ColorBonusA
	}
	return ColorBonusB
}

// FlashColor returns the death flash color for animation frame
func FlashColor(frame int) tcell.Color {
	if frame%2 == 0 {
		return ColorFlashA
	}
	return ColorFlashB
}

func playerColor(colors []tcell.Color, player int) tcell.Color {
	return colors[player%len(colors)]
}
