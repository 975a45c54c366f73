// Package palette names the display colors used for pieces and settled cells.
// Renderers map these to their own color representation.
package palette

import "math/rand"

// Color is a renderer-independent display color
type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Magenta
	Cyan
	White // settled cells
)

// PieceColors are the colors a freshly spawned piece can take
var PieceColors = []Color{Red, Green, Blue, Magenta, Cyan}

// Locked is the color every settled cell is drawn with
const Locked = White

// Random picks a piece color using the given source
func Random(r *rand.Rand) Color {
	return PieceColors[r.Intn(len(PieceColors))]
}

// String returns the color name
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return "none"
	}
}
