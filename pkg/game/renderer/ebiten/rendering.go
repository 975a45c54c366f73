package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/i18n"
	"blockfall/pkg/game/palette"
	"blockfall/pkg/game/renderer"
)

// Draw renders the last captured frame to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.valid || e.monoFontSource == nil {
		return
	}

	tile := float32(e.tileSize)
	boardW := float32(snap.width) * tile
	boardH := float32(snap.height) * tile
	x0, y0 := float32(boardMargin), float32(boardMargin)

	vector.DrawFilledRect(screen, x0, y0, boardW, boardH, colorMapBackground, false)
	vector.StrokeRect(screen, x0-borderWidth, y0-borderWidth, boardW+2*borderWidth, boardH+2*borderWidth, borderWidth, colorBorder, false)

	for _, c := range snap.locked {
		e.drawCell(screen, c, cellColor(palette.Locked))
	}
	activeColor := cellColor(snap.activeColor)
	for _, c := range snap.active {
		e.drawCell(screen, c, activeColor)
	}

	face := e.getMonoFontFace()
	textY := float64(y0+boardH) + boardMargin
	e.drawText(screen, fmt.Sprintf(i18n.T("SCORE"), snap.score), face, float64(x0), textY, colorText)
	e.drawText(screen, i18n.T("CONTROLS"), face, float64(x0), textY+face.Size+4, colorSubtle)

	if snap.toppedOut {
		e.drawText(screen, i18n.T("TOPPED_OUT"), face, float64(x0)+4, float64(y0)+4, colorLost)
	}
}

// drawCell fills one board cell, leaving a thin gap to its neighbours
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, c world.Cell, clr color.Color) {
	tile := float32(e.tileSize)
	x := float32(boardMargin) + float32(c.Col)*tile
	y := float32(boardMargin) + float32(c.Row)*tile
	vector.DrawFilledRect(screen, x+cellGap, y+cellGap, tile-2*cellGap, tile-2*cellGap, clr, false)
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// cellColor converts a palette entry to an image color
func cellColor(c palette.Color) color.RGBA {
	r, g, b, a := renderer.RGBA(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}
