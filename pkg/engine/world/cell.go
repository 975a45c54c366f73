// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any falling-block or tile-based game.
package world

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Cell represents a single occupied grid position.
// Rows grow downwards and columns grow to the right. Row may be negative
// while a piece is still above the visible grid.
//
// Cell is a value type: moving a cell produces a new Cell.
type Cell struct {
	Row int
	Col int
}

// CellSet is a set of cells with no two entries sharing row and column
type CellSet = mapset.Set[Cell]

// NewCell creates a new cell at the given position
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// NewCellSet returns an empty cell set
func NewCellSet() CellSet {
	return mapset.New[Cell]()
}

// Offset returns a new cell shifted by the given row and column deltas
func (c Cell) Offset(rowDelta, colDelta int) Cell {
	return Cell{Row: c.Row + rowDelta, Col: c.Col + colDelta}
}

// Step returns the adjacent cell in the given direction
func (c Cell) Step(dir Direction) Cell {
	rowDelta, colDelta := dir.Delta()
	return c.Offset(rowDelta, colDelta)
}

// Below returns the cell directly underneath this one
func (c Cell) Below() Cell {
	return c.Offset(1, 0)
}

// Visible returns true once the cell has entered the grid from above
func (c Cell) Visible() bool {
	return c.Row >= 0
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// SortCells orders cells row-major (top to bottom, then left to right)
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}

// SetCells returns the members of a set as a row-major sorted slice
func SetCells(set CellSet) []Cell {
	cells := make([]Cell, 0, set.Size())
	set.Each(func(c Cell) {
		cells = append(cells, c)
	})
	SortCells(cells)
	return cells
}
