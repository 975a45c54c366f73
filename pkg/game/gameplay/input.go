// Package gameplay provides the per-tick game logic and the session loop.
package gameplay

import (
	engineinput "blockfall/pkg/engine/input"
	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/state"
)

// ProcessIntent applies a high-level input intent to the active piece.
// Illegal moves leave the piece where it is. Returns whether the piece changed.
func ProcessIntent(g *state.Game, intent engineinput.Intent) bool {
	if g.Active == nil {
		return false
	}

	switch intent.Action {
	case engineinput.ActionMoveLeft:
		return g.Active.MoveHorizontallyAgainstLocked(world.Left, g.Board)
	case engineinput.ActionMoveRight:
		return g.Active.MoveHorizontallyAgainstLocked(world.Right, g.Board)
	case engineinput.ActionRotate:
		return g.Active.RotateClockwise(g.Board.Grid())
	}
	return false
}
