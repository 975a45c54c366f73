package world

import "testing"

func TestCell_OffsetReturnsNewValue(t *testing.T) {
	c := NewCell(2, 3)
	moved := c.Offset(1, -1)
	if c != (Cell{Row: 2, Col: 3}) {
		t.Errorf("Offset mutated receiver: c = %v, want (2,3)", c)
	}
	if moved != (Cell{Row: 3, Col: 2}) {
		t.Errorf("Offset(1, -1) = %v, want (3,2)", moved)
	}
}

func TestCell_Step(t *testing.T) {
	c := NewCell(0, 5)
	tests := []struct {
		dir  Direction
		want Cell
	}{
		{Left, Cell{0, 4}},
		{Right, Cell{0, 6}},
		{Down, Cell{1, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := c.Step(tt.dir); got != tt.want {
				t.Errorf("Step(%v) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestSetCells_RowMajorOrder(t *testing.T) {
	set := NewCellSet()
	set.Put(NewCell(5, 1))
	set.Put(NewCell(4, 0))
	set.Put(NewCell(5, 0))
	set.Put(NewCell(5, 0)) // duplicate

	got := SetCells(set)
	want := []Cell{{4, 0}, {5, 0}, {5, 1}}
	if len(got) != len(want) {
		t.Fatalf("SetCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SetCells = %v, want %v", got, want)
			break
		}
	}
}

func TestGrid_Bounds(t *testing.T) {
	g := NewGrid(4, 6)
	tests := []struct {
		name       string
		cell       Cell
		inColumns  bool
		inBounds   bool
		belowFloor bool
		onFloor    bool
	}{
		{"origin", Cell{0, 0}, true, true, false, false},
		{"above grid", Cell{-2, 1}, true, false, false, false},
		{"floor", Cell{5, 3}, true, true, false, true},
		{"below floor", Cell{6, 3}, true, false, true, false},
		{"left of grid", Cell{1, -1}, false, false, false, false},
		{"right of grid", Cell{1, 4}, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.InColumns(tt.cell); got != tt.inColumns {
				t.Errorf("InColumns(%v) = %v, want %v", tt.cell, got, tt.inColumns)
			}
			if got := g.InBounds(tt.cell); got != tt.inBounds {
				t.Errorf("InBounds(%v) = %v, want %v", tt.cell, got, tt.inBounds)
			}
			if got := g.BelowFloor(tt.cell); got != tt.belowFloor {
				t.Errorf("BelowFloor(%v) = %v, want %v", tt.cell, got, tt.belowFloor)
			}
			if got := g.OnFloor(tt.cell); got != tt.onFloor {
				t.Errorf("OnFloor(%v) = %v, want %v", tt.cell, got, tt.onFloor)
			}
		})
	}
}

func TestGrid_OnEdge(t *testing.T) {
	g := NewGrid(3, 3)
	if !g.OnEdge(Cell{0, 0}, Left) {
		t.Error("OnEdge((0,0), Left) = false, want true")
	}
	if g.OnEdge(Cell{0, 0}, Right) {
		t.Error("OnEdge((0,0), Right) = true, want false")
	}
	if !g.OnEdge(Cell{0, 2}, Right) {
		t.Error("OnEdge((0,2), Right) = false, want true")
	}
	if g.OnEdge(Cell{0, 2}, Down) {
		t.Error("OnEdge((0,2), Down) = true, want false")
	}
}

func TestNewGrid_PanicsOnInvalidDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) did not panic")
		}
	}()
	NewGrid(0, 5)
}

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir        Direction
		row, col   int
		horizontal bool
	}{
		{Left, 0, -1, true},
		{Right, 0, 1, true},
		{Down, 1, 0, false},
	}
	for _, tt := range tests {
		row, col := tt.dir.Delta()
		if row != tt.row || col != tt.col {
			t.Errorf("%v.Delta() = %d, %d, want %d, %d", tt.dir, row, col, tt.row, tt.col)
		}
		if got := tt.dir.IsHorizontal(); got != tt.horizontal {
			t.Errorf("%v.IsHorizontal() = %v, want %v", tt.dir, got, tt.horizontal)
		}
	}
}
