// Package piece implements the falling, player-controlled group of cells.
package piece

import (
	"fmt"
	"strings"

	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/palette"
)

// NoPivot marks a piece that cannot rotate
const NoPivot = -1

// Occupancy is the read-only view of settled cells a piece moves against
type Occupancy interface {
	Grid() world.Grid
	Has(c world.Cell) bool
}

// Piece is an ordered group of cells with an optional pivot.
// The piece owns its cells; accessors hand out copies.
type Piece struct {
	cells []world.Cell
	pivot int
	color palette.Color
}

// New creates a piece from the given cells. pivot is an index into cells
// or NoPivot. A pivot outside the cell range is a programming error.
func New(cells []world.Cell, pivot int, color palette.Color) *Piece {
	if pivot != NoPivot && (pivot < 0 || pivot >= len(cells)) {
		panic(fmt.Sprintf("piece pivot %d out of range for %d cells", pivot, len(cells)))
	}
	owned := make([]world.Cell, len(cells))
	copy(owned, cells)
	return &Piece{cells: owned, pivot: pivot, color: color}
}

// Cells returns a copy of the piece's cells in display order
func (p *Piece) Cells() []world.Cell {
	out := make([]world.Cell, len(p.cells))
	copy(out, p.cells)
	return out
}

// Len returns the number of cells in the piece
func (p *Piece) Len() int {
	return len(p.cells)
}

// Pivot returns the pivot index, or NoPivot
func (p *Piece) Pivot() int {
	return p.pivot
}

// Rotatable returns true if the piece has a pivot
func (p *Piece) Rotatable() bool {
	return p.pivot >= 0
}

// Color returns the display color chosen at spawn
func (p *Piece) Color() palette.Color {
	return p.color
}

// Clone returns a deep copy of the piece
func (p *Piece) Clone() *Piece {
	return New(p.cells, p.pivot, p.color)
}

// Occupies returns true if any cell of the piece sits at c
func (p *Piece) Occupies(c world.Cell) bool {
	for _, cell := range p.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// TranslateHorizontal shifts every cell by dir columns if and only if every
// resulting cell stays within the grid's columns. Returns whether it moved.
func (p *Piece) TranslateHorizontal(dir world.Direction, grid world.Grid) bool {
	if !dir.IsHorizontal() {
		return false
	}

	moved := make([]world.Cell, len(p.cells))
	for i, cell := range p.cells {
		next := cell.Step(dir)
		if !grid.InColumns(next) {
			return false
		}
		moved[i] = next
	}

	p.cells = moved
	return true
}

// MoveHorizontallyAgainstLocked is the move used during play. It refuses if
// any cell already sits on the boundary column in the move direction, or if
// any current cell coincides with a settled cell. Only current positions are
// compared against settled cells, not destinations.
func (p *Piece) MoveHorizontallyAgainstLocked(dir world.Direction, occ Occupancy) bool {
	if !dir.IsHorizontal() {
		return false
	}

	grid := occ.Grid()
	for _, cell := range p.cells {
		if grid.OnEdge(cell, dir) {
			return false
		}
		if occ.Has(cell) {
			return false
		}
	}

	for i, cell := range p.cells {
		p.cells[i] = cell.Step(dir)
	}
	return true
}

// RotateClockwise turns the piece 90 degrees clockwise about its pivot.
// The rotation is all-or-nothing: if any rotated cell would land below the
// floor or outside the columns the piece keeps its current cells. Rows above
// the grid are allowed and settled cells are not consulted.
func (p *Piece) RotateClockwise(grid world.Grid) bool {
	if !p.Rotatable() {
		return false
	}

	center := p.cells[p.pivot]
	rotated := make([]world.Cell, len(p.cells))
	for i, cell := range p.cells {
		dy := cell.Row - center.Row
		dx := cell.Col - center.Col
		next := world.NewCell(center.Row+dx, center.Col-dy)
		if grid.BelowFloor(next) || !grid.InColumns(next) {
			return false
		}
		rotated[i] = next
	}

	p.cells = rotated
	return true
}

// MoveDown advances every cell one row
func (p *Piece) MoveDown() {
	for i, cell := range p.cells {
		p.cells[i] = cell.Below()
	}
}

func (p *Piece) String() string {
	parts := make([]string, len(p.cells))
	for i, cell := range p.cells {
		if i == p.pivot {
			parts[i] = "*" + cell.String()
		} else {
			parts[i] = cell.String()
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
