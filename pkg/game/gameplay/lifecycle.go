package gameplay

import (
	"log"

	engineinput "blockfall/pkg/engine/input"
	"blockfall/pkg/game/renderer"
	"blockfall/pkg/game/state"
)

// Outcome reports what happened during a single tick
type Outcome struct {
	Locked     bool // the active piece settled and a new one spawned
	ClearedRow int  // row removed by the sweep, -1 if none
	Rendered   bool // a frame was drawn before the piece moved down
}

// Tick advances the session by one step:
//
//  1. apply at most one intent to the active piece
//  2. lock the piece if it rests on the floor or on a settled cell,
//     spawning the next one
//  3. otherwise draw the frame and move the piece down a row
//  4. clear the first complete row, if any, and score it
func Tick(g *state.Game, intent engineinput.Intent, frame renderer.Frame) Outcome {
	out := Outcome{ClearedRow: -1}
	g.Ticks++

	ProcessIntent(g, intent)

	if ShouldLock(g) {
		cells := g.Active.Cells()
		g.LockActive()
		out.Locked = true
		log.Printf("tick %d: locked %d cells, spawned %v", g.Ticks, len(cells), g.Active)
	} else {
		if frame != nil {
			frame.RenderFrame(g)
			out.Rendered = true
		}
		g.Active.MoveDown()
		g.Phase = state.PhaseFalling
	}

	if row, ok := g.Board.FirstCompleteRow(); ok {
		g.Board.ClearRow(row)
		g.AddScore(1)
		out.ClearedRow = row
		log.Printf("tick %d: cleared row %d, score %d", g.Ticks, row, g.Score)
	}

	return out
}

// ShouldLock reports whether any cell of the active piece sits on the floor
// row or directly above a settled cell.
func ShouldLock(g *state.Game) bool {
	grid := g.Board.Grid()
	for _, c := range g.Active.Cells() {
		if grid.OnFloor(c) || g.Board.LockedBelow(c) {
			return true
		}
	}
	return false
}
