package render

import "image/color"

// Global render configuration for colors.
var (
	// Space is black; labels are drawn in an off-white.
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Foreground = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
)
