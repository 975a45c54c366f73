package world

// Direction represents a movement direction of a falling piece
type Direction int

// Direction constants. Left and Right carry their column delta as value.
const (
	Left  Direction = -1
	Down  Direction = 0
	Right Direction = 1
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// IsHorizontal returns true for Left and Right
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	default:
		return 0, 0
	}
}
