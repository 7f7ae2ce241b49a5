// Package draw renders to a terminal: a scaled half-block canvas, sprite
// rasterizing and buffered ANSI output.
package draw

import "strconv"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Color indexes the game palette. ColorNone is the background.
type Color uint8

const (
	ColorNone Color = iota
	ColorStar
	ColorBand
	ColorGhost
	ColorGhostOutline
	ColorGhostEyes
	ColorBow
	ColorGrip
	ColorArrow
	ColorArrowTip
	ColorParticle
	ColorPlayerRing
	colorCount
)

var palette = [colorCount]RGB{
	ColorNone:         {0x0b, 0x10, 0x20},
	ColorStar:         {0x5a, 0x63, 0x84},
	ColorBand:         {0x16, 0x17, 0x3a},
	ColorGhost:        {0xff, 0xff, 0xff},
	ColorGhostOutline: {0x7c, 0x5c, 0xff},
	ColorGhostEyes:    {0x0b, 0x10, 0x20},
	ColorBow:          {0xff, 0xd1, 0x66},
	ColorGrip:         {0x8d, 0x55, 0x24},
	ColorArrow:        {0xe7, 0xf0, 0xff},
	ColorArrowTip:     {0xff, 0x4d, 0x6d},
	ColorParticle:     {0xc9, 0xb8, 0xff},
	ColorPlayerRing:   {0x2a, 0x24, 0x5c},
}

// RGB returns the palette entry, or the background for unknown indices.
func (c Color) RGB() RGB {
	if c >= colorCount {
		return palette[ColorNone]
	}
	return palette[c]
}

// Text attributes.
const (
	ColorReset = "\033[0m"
	Bold       = "\033[1m"
)

// TextStyle returns the escape sequence for text in fg over the game background.
func TextStyle(fg Color) string {
	f := fg.RGB()
	b := ColorNone.RGB()
	return "\033[38;2;" + rgbParams(f) + ";48;2;" + rgbParams(b) + "m"
}

func rgbParams(v RGB) string {
	return strconv.Itoa(int(v.R)) + ";" + strconv.Itoa(int(v.G)) + ";" + strconv.Itoa(int(v.B))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
