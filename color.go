package mandelzoom

import "math"

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// ColorAt maps an escape iteration count to its palette entry. Counts that
// reached maxIter paint black; escaping counts cycle through three
// phase-shifted sinusoids, each landing in [1, 255] and truncated toward
// zero. The same count always produces the same color.
func ColorAt(n, maxIter int) Color {
	if n >= maxIter {
		return Color{}
	}
	t := 0.1 * float64(n)
	return Color{
		R: uint8(math.Sin(t)*127 + 128),
		G: uint8(math.Sin(t+2)*127 + 128),
		B: uint8(math.Sin(t+4)*127 + 128),
	}
}

// ARGB packs the color into one 32-bit pixel word with full alpha.
func (c Color) ARGB() uint32 {
	return 0xFF000000 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
