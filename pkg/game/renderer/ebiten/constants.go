package ebiten

import "image/color"

// Color palette for the window chrome. Cell colors come from renderer.RGBA.
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for the board
	colorBorder        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle        = color.RGBA{120, 130, 180, 255}
	colorLost          = color.RGBA{240, 90, 90, 255}
)

// Tile size constraints
const (
	defaultTileSize = 24
	minTileSize     = 12
	maxTileSize     = 48
	baseFontSize    = 16.0 // Font size at the default tile size
)

// Layout margins in pixels
const (
	boardMargin  = 16
	borderWidth  = 2
	footerHeight = 56 // Score and controls below the board
	cellGap      = 1  // Gap between neighbouring cells
)
