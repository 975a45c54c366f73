// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"strings"

	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/state"
)

// cellSymbol returns the single-character symbol for a board position
func cellSymbol(g *state.Game, c world.Cell) rune {
	switch {
	case g.Active != nil && g.Active.Occupies(c):
		return '@'
	case g.Board.Has(c):
		return '#'
	default:
		return '.'
	}
}

// writeBoardRows writes rows [from, to) of the board, one line per row
func writeBoardRows(w io.Writer, g *state.Game, from, to int) {
	for row := from; row < to; row++ {
		fmt.Fprintf(w, "%3d ", row)
		for col := 0; col < g.Board.Width(); col++ {
			fmt.Fprintf(w, "%c", cellSymbol(g, world.NewCell(row, col)))
		}
		fmt.Fprintln(w)
	}
}

// DumpBoard writes a plain-text debug dump of g: metadata, legend, and the
// board including any rows above the top that hold settled cells or the
// active piece.
func DumpBoard(w io.Writer, g *state.Game) {
	top := 0
	for _, c := range g.Board.Locked() {
		top = min(top, c.Row)
	}
	if g.Active != nil {
		for _, c := range g.Active.Cells() {
			top = min(top, c.Row)
		}
	}

	fmt.Fprintln(w, "=== BOARD DUMP ===")
	fmt.Fprintf(w, "board: %s\n", g.Board.Grid())
	fmt.Fprintf(w, "ticks: %d\n", g.Ticks)
	fmt.Fprintf(w, "score: %d\n", g.Score)
	fmt.Fprintf(w, "phase: %s\n", g.Phase)
	fmt.Fprintf(w, "locked_cells: %d\n", g.Board.Len())
	if g.Active != nil {
		fmt.Fprintf(w, "active: %s %s\n", g.Active.Color(), g.Active)
	}
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = empty  # = settled  @ = active piece")
	fmt.Fprintln(w, "--- Board ---")
	if top < 0 {
		writeBoardRows(w, g, top, 0)
		fmt.Fprintln(w, "    "+strings.Repeat("-", g.Board.Width()))
	}
	writeBoardRows(w, g, 0, g.Board.Height())
}
