package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// MinBoardSide is the smallest board width or height BoardSize returns
	MinBoardSide = 4

	// margin is the number of rows and columns left for the border and score
	margin = 5
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// BoardSize derives board dimensions from a terminal of cols x rows
// characters, keeping roughly a 1.2 width to height ratio.
func BoardSize(cols, rows int) (width, height int) {
	if rows < cols {
		height = rows - margin
		width = int(float64(rows)*1.2) - margin
	} else {
		height = int(float64(cols)/1.2) - margin
		width = cols - margin
	}
	return max(width, MinBoardSide), max(height, MinBoardSide)
}

// EraseLine clears from the cursor to the end of the line
const EraseLine = "\x1b[K"

// ANSI control sequences
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	home        = "\x1b[H"
	clearScreen = "\x1b[2J"
)

// HideCursor hides the terminal cursor
func HideCursor(w io.Writer) error {
	_, err := io.WriteString(w, hideCursor)
	return err
}

// ShowCursor makes the terminal cursor visible again
func ShowCursor(w io.Writer) error {
	_, err := io.WriteString(w, showCursor)
	return err
}

// Home moves the cursor to the top-left corner
func Home(w io.Writer) error {
	_, err := io.WriteString(w, home)
	return err
}

// ClearScreen erases the screen and moves the cursor home
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, clearScreen+home)
	return err
}
