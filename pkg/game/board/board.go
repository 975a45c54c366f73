// Package board holds the settled cells of a session and the per-row
// occupancy index derived from them.
package board

import (
	"blockfall/pkg/engine/world"
)

// Board is the bounded grid plus its settled ("locked") cells.
//
// rowCounts is derived from locked and is rebuilt by recount, which every
// mutating method calls before returning.
type Board struct {
	grid      world.Grid
	locked    world.CellSet
	rowCounts map[int]int
	version   uint64
}

// New creates an empty board with the given dimensions
func New(width, height int) *Board {
	return &Board{
		grid:      world.NewGrid(width, height),
		locked:    world.NewCellSet(),
		rowCounts: make(map[int]int),
	}
}

// Grid returns the board dimensions
func (b *Board) Grid() world.Grid {
	return b.grid
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.grid.Width()
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.grid.Height()
}

// Version increases every time the locked set changes
func (b *Board) Version() uint64 {
	return b.version
}

// Len returns the number of locked cells
func (b *Board) Len() int {
	return b.locked.Size()
}

// Has checks whether a locked cell sits at c
func (b *Board) Has(c world.Cell) bool {
	return b.locked.Has(c)
}

// LockedBelow checks whether a locked cell sits directly under c
func (b *Board) LockedBelow(c world.Cell) bool {
	return b.locked.Has(c.Below())
}

// Locked returns the locked cells sorted row-major
func (b *Board) Locked() []world.Cell {
	return world.SetCells(b.locked)
}

// RowCount returns how many locked cells are in the given row
func (b *Board) RowCount(row int) int {
	return b.rowCounts[row]
}

// IsRowComplete returns true if every column of the row is locked
func (b *Board) IsRowComplete(row int) bool {
	return b.RowCount(row) == b.grid.Width()
}

// FirstCompleteRow returns the topmost complete row, if any
func (b *Board) FirstCompleteRow() (int, bool) {
	found := false
	first := 0
	for row := range b.rowCounts {
		if !b.IsRowComplete(row) {
			continue
		}
		if !found || row < first {
			first = row
			found = true
		}
	}
	return first, found
}

// Lock adds the given cells to the locked set
func (b *Board) Lock(cells []world.Cell) {
	for _, c := range cells {
		b.locked.Put(c)
	}
	b.recount()
}

// ClearRow removes every locked cell in row and shifts every locked cell
// above it down by one. Cells below row are left where they are.
func (b *Board) ClearRow(row int) {
	next := world.NewCellSet()
	b.locked.Each(func(c world.Cell) {
		switch {
		case c.Row == row:
			// dropped
		case c.Row < row:
			next.Put(c.Below())
		default:
			next.Put(c)
		}
	})
	b.locked = next
	b.recount()
}

// ToppedOutRow is the lowest row index at which a settled cell means the
// stack has reached the top of the board
const ToppedOutRow = 1

// ToppedOut reports whether any settled cell sits at or above ToppedOutRow
func (b *Board) ToppedOut() bool {
	for row, n := range b.rowCounts {
		if n > 0 && row <= ToppedOutRow {
			return true
		}
	}
	return false
}

// recount rebuilds rowCounts from the locked set
func (b *Board) recount() {
	counts := make(map[int]int, len(b.rowCounts))
	b.locked.Each(func(c world.Cell) {
		counts[c.Row]++
	})
	b.rowCounts = counts
	b.version++
}
