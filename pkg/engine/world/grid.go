package world

import "fmt"

// Grid holds the bounded dimensions of the play field.
// Dimensions are fixed for the lifetime of a session.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Grid dimensions must be positive, got %dx%d", width, height))
	}
	return Grid{width: width, height: height}
}

// Width returns the number of columns in the grid
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g Grid) Height() int {
	return g.height
}

// FloorRow returns the index of the bottom row
func (g Grid) FloorRow() int {
	return g.height - 1
}

// InColumns checks whether the cell's column lies within [0, width)
func (g Grid) InColumns(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width
}

// InBounds checks if a cell is inside the visible grid
func (g Grid) InBounds(c Cell) bool {
	return g.InColumns(c) && c.Row >= 0 && c.Row < g.height
}

// BelowFloor returns true if the cell has passed the bottom row
func (g Grid) BelowFloor(c Cell) bool {
	return c.Row >= g.height
}

// OnFloor returns true if the cell sits on the bottom row
func (g Grid) OnFloor(c Cell) bool {
	return c.Row == g.FloorRow()
}

// OnEdge returns true if the cell occupies the boundary column in the given direction
func (g Grid) OnEdge(c Cell, dir Direction) bool {
	switch dir {
	case Left:
		return c.Col == 0
	case Right:
		return c.Col == g.width-1
	default:
		return false
	}
}

// ForEachRow calls fn for every row index from top to bottom
func (g Grid) ForEachRow(fn func(row int)) {
	for row := 0; row < g.height; row++ {
		fn(row)
	}
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.width, g.height)
}
