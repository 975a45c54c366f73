package ebiten

import (
	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/state"
)

// RenderFrame captures a snapshot of g for the next Draw call
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil || g.Board == nil {
		e.snapshot.valid = false
		return
	}

	grid := g.Board.Grid()
	// Settled cells only change on lock and clear
	if v := g.Board.Version(); !e.snapshot.valid || v != e.snapshot.boardVersion {
		e.snapshot.locked = visibleCells(grid, g.Board.Locked())
		e.snapshot.toppedOut = g.Board.ToppedOut()
		e.snapshot.boardVersion = v
	}

	e.snapshot.valid = true
	e.snapshot.width = grid.Width()
	e.snapshot.height = grid.Height()
	e.snapshot.score = g.Score
	e.snapshot.active = nil
	if g.Active != nil {
		e.snapshot.active = visibleCells(grid, g.Active.Cells())
		e.snapshot.activeColor = g.Active.Color()
	}
}

// visibleCells drops the cells outside the board, such as those still above it
func visibleCells(grid world.Grid, cells []world.Cell) []world.Cell {
	out := cells[:0]
	for _, c := range cells {
		if grid.InBounds(c) {
			out = append(out, c)
		}
	}
	return out
}

func (e *EbitenRenderer) currentSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}
