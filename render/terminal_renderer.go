package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snake-term/config"
	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/core"
	"github.com/lixenwraith/snake-term/engine"
)

// Overlay selects the banner drawn under the board
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayPaused
	OverlayReplay
)

// MenuView is the data shown on the start menu
type MenuView struct {
	Items       []string
	Selected    int
	HighScore   int
	Multiplayer bool
	Width       int
	Height      int
}

// GameOverView is the data shown once a round ends
type GameOverView struct {
	Scores      []int
	HighScore   int
	NewRecord   bool
	AutoRestart bool
	ReplayDone  bool
}

// TerminalRenderer draws the board and screens onto a tcell screen
// Each board cell takes two columns: the glyph and a spacer
type TerminalRenderer struct {
	screen   tcell.Screen
	settings *config.Settings
	gameX    int
	gameY    int
}

// NewTerminalRenderer creates a renderer drawing at the top-left corner of screen
func NewTerminalRenderer(screen tcell.Screen, settings *config.Settings) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:   screen,
		settings: settings,
	}
	if !settings.HideScore {
		r.gameY = constants.ScoreLineHeight
	}
	return r
}

// BoardOrigin returns the screen cell of board position (0,0)
func (r *TerminalRenderer) BoardOrigin() (x, y int) {
	return r.gameX, r.gameY
}

// CellToScreen converts a board position to screen coordinates
func (r *TerminalRenderer) CellToScreen(p core.Position) (x, y int) {
	return r.gameX + p.Col*constants.CellScreenWidth, r.gameY + p.Row
}

// RenderFrame draws one live frame
func (r *TerminalRenderer) RenderFrame(g *engine.Game, overlay Overlay) {
	r.screen.Clear()

	board := g.Board()
	r.drawScore(g)
	r.drawBoard(board)

	for i, s := range g.Snakes() {
		r.drawSnake(board, s, playerColor(ColorBody[:], i), playerColor(ColorHead[:], i), r.settings.HeadGlyph(s.Direction))
	}
	r.drawFood(g)

	if board.Bonus != nil {
		style := tcell.StyleDefault.Foreground(BonusColor(g.Frame(), constants.BonusBlinkDivisor))
		r.drawCell(board, board.Bonus.Pos, constants.BonusFoodGlyph, style)
	}

	switch overlay {
	case OverlayPaused:
		r.drawText(2, r.belowBoard(board), constants.PauseMessage, tcell.StyleDefault.Foreground(ColorBanner))
	case OverlayReplay:
		r.drawText(2, r.belowBoard(board), constants.ReplayMessage, tcell.StyleDefault.Foreground(ColorBanner))
	}

	r.screen.Show()
}

// RenderDeathFrame draws one frame of the death flash
func (r *TerminalRenderer) RenderDeathFrame(g *engine.Game, frame int) {
	r.screen.Clear()

	board := g.Board()
	r.drawScore(g)
	r.drawBoard(board)

	flash := FlashColor(frame)
	for _, s := range g.Snakes() {
		r.drawSnake(board, s, flash, flash, constants.DeadHeadGlyph)
	}
	r.drawFood(g)

	r.screen.Show()
}

// RenderGameOver draws the final board with the result banner beneath it
func (r *TerminalRenderer) RenderGameOver(g *engine.Game, v GameOverView) {
	r.screen.Clear()

	board := g.Board()
	r.drawScore(g)
	r.drawBoard(board)
	for _, s := range g.Snakes() {
		r.drawSnake(board, s, FlashColor(0), FlashColor(0), constants.DeadHeadGlyph)
	}
	r.drawFood(g)

	y := r.belowBoard(board)
	red := tcell.StyleDefault.Foreground(ColorGameOver)
	hint := tcell.StyleDefault.Foreground(ColorHint)

	if v.AutoRestart {
		r.drawText(2, y, "GAME OVER! Restarting...", red)
		r.screen.Show()
		return
	}

	x := r.drawText(2, y, "GAME OVER!", red) + 2
	if len(v.Scores) > 1 {
		for i, sc := range v.Scores {
			label := fmt.Sprintf("P%d: ", i+1)
			x = r.drawText(x, y, label, tcell.StyleDefault.Foreground(ColorScore))
			x = r.drawText(x, y, fmt.Sprint(sc), tcell.StyleDefault.Foreground(playerColor(ColorBody[:], i))) + 2
		}
	} else if len(v.Scores) == 1 {
		x = r.drawText(x, y, "Score: ", tcell.StyleDefault.Foreground(ColorScore))
		r.drawText(x, y, fmt.Sprint(v.Scores[0]), tcell.StyleDefault.Foreground(ColorSelected))
	}

	y++
	x = r.drawText(2, y, "High Score: ", tcell.StyleDefault.Foreground(ColorScore))
	x = r.drawText(x, y, fmt.Sprint(v.HighScore), tcell.StyleDefault.Foreground(ColorSelected))
	if v.NewRecord {
		r.drawText(x, y, " (NEW!)", tcell.StyleDefault.Foreground(ColorSelected))
	}

	y++
	if v.ReplayDone {
		r.drawText(2, y, constants.ReplayDoneHint, hint)
	} else {
		r.drawText(2, y, constants.GameOverHint, hint)
	}

	r.screen.Show()
}

// RenderMenu draws the start menu
func (r *TerminalRenderer) RenderMenu(v MenuView) {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(ColorTitle)
	inner := runewidth.StringWidth(constants.GameTitle) + 10
	r.drawText(2, 1, "╔"+strings.Repeat("═", inner)+"╗", title)
	r.drawText(2, 2, "║"+padCenter(constants.GameTitle, inner)+"║", title)
	r.drawText(2, 3, "╚"+strings.Repeat("═", inner)+"╝", title)

	y := 5
	if v.HighScore > 0 {
		x := r.drawText(2, y, "High Score:", tcell.StyleDefault.Foreground(ColorHighScore))
		r.drawText(x+2, y, fmt.Sprint(v.HighScore), tcell.StyleDefault.Foreground(ColorSelected))
		y += 2
	}

	mode := "Singleplayer"
	if v.Multiplayer {
		mode = "Multiplayer"
	}
	value := tcell.StyleDefault.Foreground(ColorValue)
	x := r.drawText(2, y, "Mode: ", tcell.StyleDefault)
	r.drawText(x, y, mode, value)
	y++
	x = r.drawText(2, y, "Map: ", tcell.StyleDefault)
	r.drawText(x, y, fmt.Sprintf("%dx%d", v.Width, v.Height), value)
	y += 2

	for i, item := range v.Items {
		if i == v.Selected {
			sel := tcell.StyleDefault.Foreground(ColorSelected)
			r.drawText(2, y, "> "+item, sel)
		} else {
			r.drawText(4, y, item, tcell.StyleDefault.Foreground(ColorItem))
		}
		y++
	}

	r.drawText(2, y+1, constants.MenuHint, tcell.StyleDefault.Foreground(ColorHint))
	r.screen.Show()
}

// ScoreText returns the score line for the current snakes
func ScoreText(g *engine.Game) string {
	snakes := g.Snakes()
	if len(snakes) > 1 {
		parts := make([]string, len(snakes))
		for i, s := range snakes {
			parts[i] = fmt.Sprintf("P%d: %d", i+1, s.Score)
		}
		return strings.Join(parts, "  ")
	}
	return fmt.Sprintf("Score: %d", snakes[0].Score)
}

func (r *TerminalRenderer) drawScore(g *engine.Game) {
	if r.settings.HideScore {
		return
	}
	text := ScoreText(g)
	boardWidth := g.Board().Width * constants.CellScreenWidth
	pad := max((boardWidth-runewidth.StringWidth(text))/2, 0)
	r.drawText(r.gameX+pad, 0, text, tcell.StyleDefault.Foreground(ColorScore))
}

// drawBoard fills every cell: outside the border is wall, inside is empty, then walls
func (r *TerminalRenderer) drawBoard(b *engine.Board) {
	empty := tcell.StyleDefault.Foreground(ColorEmpty)
	wall := tcell.StyleDefault.Foreground(ColorWall)

	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			p := core.Position{Row: row, Col: col}
			if b.Border.Contains(p) {
				r.drawCell(b, p, constants.EmptyGlyph, empty)
			} else {
				r.drawCell(b, p, constants.WallGlyph, wall)
			}
		}
	}

	for _, p := range b.Walls.Cells() {
		r.drawCell(b, p, constants.WallGlyph, wall)
	}
}

func (r *TerminalRenderer) drawSnake(b *engine.Board, s *engine.Snake, body, head tcell.Color, headGlyph rune) {
	bodyStyle := tcell.StyleDefault.Foreground(body)
	for _, p := range s.Parts {
		r.drawCell(b, p, r.settings.Body, bodyStyle)
	}
	r.drawCell(b, s.Head, headGlyph, tcell.StyleDefault.Foreground(head))
}

// drawFood draws the shared food cell once
func (r *TerminalRenderer) drawFood(g *engine.Game) {
	s := g.Snake(0)
	if s == nil || s.Food == engine.NoFood {
		return
	}
	r.drawCell(g.Board(), s.Food, r.settings.Food, tcell.StyleDefault.Foreground(ColorFood))
}

func (r *TerminalRenderer) drawCell(b *engine.Board, p core.Position, ch rune, style tcell.Style) {
	if p.Row < 0 || p.Row >= b.Height || p.Col < 0 || p.Col >= b.Width {
		return
	}
	x, y := r.CellToScreen(p)
	r.screen.SetContent(x, y, ch, nil, style)
	r.screen.SetContent(x+1, y, ' ', nil, tcell.StyleDefault)
}

// drawText writes s starting at (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}

func (r *TerminalRenderer) belowBoard(b *engine.Board) int {
	return r.gameY + b.Height + 1
}

func padCenter(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
