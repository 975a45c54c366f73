package renderer

import (
	"github.com/gookit/color"

	"blockfall/pkg/game/palette"
)

// Terminal styles, one per palette entry. Foreground and background match
// so a cell reads as a solid block whatever glyph the font draws.
var (
	ColorRed     = color.Style{color.FgRed, color.BgRed}
	ColorGreen   = color.Style{color.FgGreen, color.BgGreen}
	ColorBlue    = color.Style{color.FgBlue, color.BgBlue}
	ColorMagenta = color.Style{color.FgMagenta, color.BgMagenta}
	ColorCyan    = color.Style{color.FgCyan, color.BgCyan}
	ColorLocked  = color.Style{color.FgWhite, color.BgWhite}

	ColorBorder = color.Style{color.FgGray}
	ColorScore  = color.Style{color.FgWhite, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
	ColorLost   = color.Style{color.FgLightRed, color.OpBold}
)

// PieceStyle returns the terminal style for a palette color
func PieceStyle(c palette.Color) color.Style {
	switch c {
	case palette.Red:
		return ColorRed
	case palette.Green:
		return ColorGreen
	case palette.Blue:
		return ColorBlue
	case palette.Magenta:
		return ColorMagenta
	case palette.Cyan:
		return ColorCyan
	case palette.White:
		return ColorLocked
	default:
		return color.Style{}
	}
}

// RGBA returns the palette color as 8-bit components for graphical backends
func RGBA(c palette.Color) (r, g, b, a uint8) {
	switch c {
	case palette.Red:
		return 0xd0, 0x30, 0x30, 0xff
	case palette.Green:
		return 0x30, 0xb0, 0x40, 0xff
	case palette.Blue:
		return 0x30, 0x60, 0xd0, 0xff
	case palette.Magenta:
		return 0xc0, 0x40, 0xc0, 0xff
	case palette.Cyan:
		return 0x30, 0xc0, 0xc8, 0xff
	case palette.White:
		return 0xe8, 0xe8, 0xe8, 0xff
	default:
		return 0, 0, 0, 0
	}
}
