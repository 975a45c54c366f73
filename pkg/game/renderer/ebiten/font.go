package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts parses the embedded Go Mono font
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	e.monoFontSource = src
	e.cachedFace = nil
	return nil
}

// getFontSize returns the font size for UI text, scaled to the tile size
func (e *EbitenRenderer) getFontSize() float64 {
	size := baseFontSize * float64(e.tileSize) / defaultTileSize
	if size < 10 {
		size = 10
	}
	return size
}

// getMonoFontFace returns a cached monospace font face
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.getFontSize()
	if e.cachedFace == nil || e.cachedFaceSize != size {
		e.cachedFaceSize = size
		e.cachedFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedFace
}
