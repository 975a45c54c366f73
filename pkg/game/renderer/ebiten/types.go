package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "blockfall/pkg/engine/input"
	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/gameplay"
	"blockfall/pkg/game/palette"
)

// renderSnapshot holds a consistent copy of the game state for Draw.
// It is captured by RenderFrame so Draw never reads the live game.
type renderSnapshot struct {
	valid       bool
	width       int
	height      int
	locked      []world.Cell
	active      []world.Cell
	activeColor palette.Color
	score       int
	toppedOut   bool

	// Board.Version the locked cells were copied at
	boardVersion uint64
}

// EbitenRenderer is the Ebiten-based graphical renderer. It is both the
// session's frame and its scheduler: Ebiten calls Update at a fixed rate and
// every ticksPerFall updates the session advances one tick.
type EbitenRenderer struct {
	session *gameplay.Session
	queue   *engineinput.Queue

	// Tile size in pixels
	tileSize int

	// Updates between session ticks, and updates seen since the last one
	ticksPerFall int
	updates      int

	// Font source and cached face for the score line
	monoFontSource *text.GoTextFaceSource
	cachedFace     *text.GoTextFace
	cachedFaceSize float64

	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	windowTitle        string
	windowOpenedLogged bool
}
