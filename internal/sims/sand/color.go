package sand

import "image/color"

// Random is the uniform source every probabilistic rule draws from.
// *core.RNG and *rand.Rand both satisfy it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// Generator tags a procedural color source.
type Generator uint8

const (
	GenNone Generator = iota
	GenFire
	GenLava
	GenSpark
	GenBlast
)

// Color is either a fixed RGB triple or a procedural generator that is
// sampled on every refresh.
type Color struct {
	rgb color.RGBA
	gen Generator
}

// Fixed returns a static color.
func Fixed(r, g, b uint8) Color {
	return Color{rgb: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// Procedural returns a color resolved through gen on every sample.
func Procedural(gen Generator) Color {
	return Color{gen: gen}
}

// Dynamic reports whether the color must be recomputed every tick.
func (c Color) Dynamic() bool { return c.gen != GenNone }

// Sample resolves the color. Fixed colors are returned verbatim.
func (c Color) Sample(rnd Random) color.RGBA {
	if c.gen == GenNone {
		return c.rgb
	}
	return c.gen.sample(rnd)
}

// Accepts reports whether px is a color Sample could have produced.
func (c Color) Accepts(px color.RGBA) bool {
	if c.gen == GenNone {
		return px == c.rgb
	}
	lo, hi := c.gen.bounds()
	return px.A == 255 &&
		px.R >= lo.R && px.R <= hi.R &&
		px.G >= lo.G && px.G <= hi.G &&
		px.B >= lo.B && px.B <= hi.B
}

func (g Generator) sample(rnd Random) color.RGBA {
	lo, hi := g.bounds()
	return color.RGBA{
		R: jitter(rnd, lo.R, hi.R),
		G: jitter(rnd, lo.G, hi.G),
		B: jitter(rnd, lo.B, hi.B),
		A: 255,
	}
}

// bounds returns the inclusive channel ranges a generator draws from.
func (g Generator) bounds() (lo, hi color.RGBA) {
	switch g {
	case GenFire:
		return color.RGBA{R: 230, G: 70, B: 0}, color.RGBA{R: 255, G: 190, B: 40}
	case GenLava:
		return color.RGBA{R: 200, G: 40, B: 5}, color.RGBA{R: 255, G: 110, B: 30}
	case GenSpark:
		return color.RGBA{R: 170, G: 170, B: 235}, color.RGBA{R: 255, G: 255, B: 255}
	case GenBlast:
		return color.RGBA{R: 240, G: 180, B: 60}, color.RGBA{R: 255, G: 255, B: 170}
	default:
		return color.RGBA{}, color.RGBA{}
	}
}

func jitter(rnd Random, lo, hi uint8) uint8 {
	if hi <= lo {
		return lo
	}
	return lo + uint8(rnd.IntN(int(hi-lo)+1))
}
