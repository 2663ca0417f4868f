package falldown

import (
	"fmt"

	"github.com/vovakirdan/falldown/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	PlayerChar = '▓'
)

// Render draws the board, HUD and any banner to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := g.loop.Session()
	cw, ch := g.cfg.Board.CellWidth, g.cfg.Board.CellHeight
	params := s.Params()
	board := s.Board()

	for _, b := range s.Blocks() {
		g.drawBlock(dst, b, board, params)
	}

	pr := core.CellRect(s.Player().Box(), cw, ch)
	pr.Y += hudRows
	dst.DrawRect(pr, PlayerChar, core.ColorBrightYellow)

	// HUD
	hud := fmt.Sprintf(" Score: %d   Last: %d   Best: %d ", s.Score(), g.lastScore, g.bestScore)
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightCyan)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.reporting {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("You scored: %d  |  Press any key", g.lastScore))
	}
}

// drawBlock fills a block's rows, leaving cells whose centre is in the gap open.
func (g *Game) drawBlock(dst *core.Screen, b Block, board Board, params Params) {
	cw, ch := g.cfg.Board.CellWidth, g.cfg.Board.CellHeight
	row := core.CellRect(core.BoxAt(0, b.Y, board.Width, params.BlockHeight), cw, ch)
	gap := b.Gap(params.GapWidth)

	color := core.ColorCyan
	if b.Cleared {
		color = core.ColorGray
	}

	for y := row.Y; y < row.Bottom(); y++ {
		for x := row.X; x < row.Right(); x++ {
			centre := (float64(x) + 0.5) * cw
			if centre > gap.Left && centre < gap.Right {
				continue
			}
			dst.SetColored(x, y+hudRows, BlockChar, color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
