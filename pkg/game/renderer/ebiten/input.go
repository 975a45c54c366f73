package ebiten

import (
	"errors"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "blockfall/pkg/engine/input"
	"blockfall/pkg/game/gameplay"
)

// Update handles input and advances the session (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.handleZoom()

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if code := keyCode(k); code != "" {
			e.queue.PushCode(engineinput.DeviceKeyboard, code)
		}
	}

	return e.step()
}

// step counts one update and ticks the session once every ticksPerFall
func (e *EbitenRenderer) step() error {
	e.updates++
	if e.updates < e.ticksPerFall {
		return nil
	}
	e.updates = 0

	if _, err := e.session.Tick(); err != nil {
		if errors.Is(err, gameplay.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// keyCode translates an Ebiten key to the device code used by the bindings
func keyCode(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowLeft:
		return "arrow_left"
	case ebiten.KeyArrowRight:
		return "arrow_right"
	case ebiten.KeyArrowUp:
		return "arrow_up"
	case ebiten.KeyArrowDown:
		return "arrow_down"
	case ebiten.KeyEscape:
		return "escape"
	case ebiten.KeyEnter:
		return "enter"
	}
	if name := k.String(); len(name) == 1 {
		return strings.ToLower(name)
	}
	return ""
}

// handleZoom handles the +/- keys for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - 4)
	}
}

// setTileSize changes the tile size within limits and resizes the window
func (e *EbitenRenderer) setTileSize(size int) {
	size = max(minTileSize, min(maxTileSize, size))
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	ebiten.SetWindowSize(e.Layout(0, 0))
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	g := e.session.Game
	w := g.Board.Width()*e.tileSize + 2*boardMargin
	h := g.Board.Height()*e.tileSize + 2*boardMargin + footerHeight
	return w, h
}
