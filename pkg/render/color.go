// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color by half.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Blend mixes src over dst using src's alpha and returns an opaque color.
func Blend(dst, src color.RGBA) color.RGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a))
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// Opaque reports whether the color fully covers what is under it.
func Opaque(c color.RGBA) bool {
	return c.A == 255
}
