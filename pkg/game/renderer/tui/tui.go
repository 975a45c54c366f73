package tui

import (
	"fmt"
	"io"
	"strings"

	"blockfall/pkg/engine/terminal"
	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/i18n"
	"blockfall/pkg/game/renderer"
	"blockfall/pkg/game/state"
)

// lineEnd is used instead of "\n" because the terminal is in raw mode
const lineEnd = "\r\n"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	// ShowControls prints the key help below the score line
	ShowControls bool
}

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out, ShowControls: true}
}

// Init hides the cursor and clears the screen
func (t *TUIRenderer) Init() error {
	if err := terminal.HideCursor(t.out); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}
	return terminal.ClearScreen(t.out)
}

// Close clears the board and gives the cursor back
func (t *TUIRenderer) Close() error {
	if err := terminal.ClearScreen(t.out); err != nil {
		return err
	}
	return terminal.ShowCursor(t.out)
}

// RenderFrame redraws the whole board from the top-left corner
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	terminal.Home(t.out)
	io.WriteString(t.out, t.Draw(g))
}

// Draw returns the frame for g without any cursor movement
func (t *TUIRenderer) Draw(g *state.Game) string {
	var sb strings.Builder
	width := g.Board.Width()

	active := world.NewCellSet()
	if g.Active != nil {
		for _, c := range g.Active.Cells() {
			if c.Visible() {
				active.Put(c)
			}
		}
	}
	pieceStyle := renderer.ColorLocked
	if g.Active != nil {
		pieceStyle = renderer.PieceStyle(g.Active.Color())
	}

	border := renderer.ColorBorder
	sb.WriteString(border.Sprint(renderer.BorderTopLeft + strings.Repeat(renderer.BorderHorizontal, width) + renderer.BorderTopRight))
	sb.WriteString(lineEnd)

	g.Board.Grid().ForEachRow(func(row int) {
		sb.WriteString(border.Sprint(renderer.BorderVertical))
		for col := 0; col < width; col++ {
			c := world.NewCell(row, col)
			switch {
			case active.Has(c):
				sb.WriteString(pieceStyle.Sprint(renderer.Glyph))
			case g.Board.Has(c):
				sb.WriteString(renderer.ColorLocked.Sprint(renderer.Glyph))
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString(border.Sprint(renderer.BorderVertical))
		sb.WriteString(lineEnd)
	})

	sb.WriteString(border.Sprint(renderer.BorderBottomLeft + strings.Repeat(renderer.BorderHorizontal, width) + renderer.BorderBottomRight))
	sb.WriteString(lineEnd)

	sb.WriteString(renderer.ColorScore.Sprint(fmt.Sprintf(i18n.T("SCORE"), g.Score)))
	sb.WriteString(terminal.EraseLine)
	sb.WriteString(lineEnd)
	if g.Board.ToppedOut() {
		sb.WriteString(renderer.ColorLost.Sprint(i18n.T("TOPPED_OUT")))
		sb.WriteString(terminal.EraseLine)
		sb.WriteString(lineEnd)
	}
	if t.ShowControls {
		sb.WriteString(renderer.ColorSubtle.Sprint(i18n.T("CONTROLS")))
		sb.WriteString(terminal.EraseLine)
		sb.WriteString(lineEnd)
	}
	return sb.String()
}
