// Package ebiten provides an Ebiten-based 2D graphical renderer.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "blockfall/pkg/engine/input"
	"blockfall/pkg/game/gameplay"
	"blockfall/pkg/game/i18n"
	"blockfall/pkg/game/state"
)

// New creates an Ebiten renderer driving g one tick per interval
func New(g *state.Game, interval time.Duration) *EbitenRenderer {
	e := &EbitenRenderer{
		queue:        engineinput.NewQueue(),
		tileSize:     defaultTileSize,
		ticksPerFall: ticksForInterval(interval, ebiten.DefaultTPS),
	}
	e.session = gameplay.NewSession(g, e.queue, e)
	return e
}

// ticksForInterval converts a fall interval to a number of Ebiten updates
func ticksForInterval(interval time.Duration, tps int) int {
	n := int(math.Round(interval.Seconds() * float64(tps)))
	if n < 1 {
		return 1
	}
	return n
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	e.windowTitle = i18n.T("WINDOW_TITLE")
	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(e.windowTitle)
	ebiten.SetTPS(ebiten.DefaultTPS)

	// Draw the spawned piece before the first tick
	e.RenderFrame(e.session.Game)
	return nil
}

// Close has nothing to release; Ebiten tears the window down itself
func (e *EbitenRenderer) Close() error {
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes or
// the player quits
func (e *EbitenRenderer) Run() error {
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	log.Printf("window closed after %d ticks, score %d", e.session.Game.Ticks, e.session.Game.Score)
	return nil
}
