package render

import "image/color"

// RGBAAt reads the pixel at (x, y) from a packed row-major RGBA buffer of
// the given width. Out-of-range reads return transparent black.
func RGBAAt(buf []byte, width, x, y int) color.RGBA {
	if width <= 0 || x < 0 || y < 0 || x >= width {
		return color.RGBA{}
	}
	base := 4 * (y*width + x)
	if base+3 >= len(buf) {
		return color.RGBA{}
	}
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

// Blend mixes overlay into base with the given weight in [0, 1].
func Blend(base, overlay color.RGBA, weight float64) color.RGBA {
	if weight <= 0 {
		return base
	}
	if weight >= 1 {
		return overlay
	}
	inv := 1 - weight
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*inv + float64(b)*weight + 0.5)
	}
	return color.RGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}

// FillMaskRGBA writes tint for every cell flagged in mask, leaving the rest
// transparent.
func FillMaskRGBA(buf []byte, mask []bool, tint color.RGBA) {
	for i, on := range mask {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		if !on {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = tint.A
	}
}
