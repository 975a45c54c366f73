package renderer

import (
	"blockfall/pkg/game/state"
)

// Glyph is drawn for every occupied cell
const Glyph = "▓"

// Box-drawing characters for the board border
const (
	BorderTopLeft     = "┌"
	BorderTopRight    = "┐"
	BorderBottomLeft  = "└"
	BorderBottomRight = "┘"
	BorderHorizontal  = "─"
	BorderVertical    = "│"
)

// Frame is the part of a renderer the engine draws through every tick
type Frame interface {
	// RenderFrame renders a complete game frame: border, settled cells,
	// the visible part of the active piece and the score line
	RenderFrame(g *state.Game)
}

// Renderer defines the interface for game rendering backends
// Implementations include TUI (terminal) and Ebiten.
type Renderer interface {
	Frame

	// Init initializes the renderer (colors, terminal mode, window, etc.)
	Init() error

	// Close releases whatever Init acquired
	Close() error
}
