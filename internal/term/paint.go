// Package term renders the sand world in a terminal with tcell. Each
// character cell shows two grid rows using an upper half block: the
// foreground is the top cell, the background the bottom one.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/core"
	"sandfall/internal/render"
)

const upperHalf = '▀'

// CellWriter is the slice of tcell.Screen the painter needs.
type CellWriter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func halfBlock(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
}

// Rows returns the number of terminal rows needed for a grid height.
func Rows(h int) int { return (h + 1) / 2 }

var highlightTint = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Paint draws the packed RGBA buffer of a grid of the given size. An odd
// final row is paired with black.
func Paint(dst CellWriter, pix []byte, size core.Size) {
	PaintHighlight(dst, pix, size, nil)
}

// PaintHighlight is Paint with the cells selected by hl lightened.
func PaintHighlight(dst CellWriter, pix []byte, size core.Size, hl func(x, y int) bool) {
	at := func(x, y int) color.RGBA {
		c := render.RGBAAt(pix, size.W, x, y)
		if hl != nil && hl(x, y) {
			c = render.Blend(c, highlightTint, 0.4)
		}
		return c
	}
	for row := 0; row < Rows(size.H); row++ {
		y := row * 2
		for x := 0; x < size.W; x++ {
			bottom := color.RGBA{}
			if y+1 < size.H {
				bottom = at(x, y+1)
			}
			dst.SetContent(x, row, upperHalf, nil, halfBlock(at(x, y), bottom))
		}
	}
}

// previewMask returns a predicate for the cells a pending rectangle or line
// will cover.
func previewMask(rect bool, x0, y0, x1, y1, radius int) func(x, y int) bool {
	if rect {
		minX, maxX := min(x0, x1), max(x0, x1)
		minY, maxY := min(y0, y1), max(y0, y1)
		return func(x, y int) bool {
			return x >= minX && x <= maxX && y >= minY && y <= maxY
		}
	}
	r2 := float64(radius*radius) + 0.25
	dx, dy := float64(x1-x0), float64(y1-y0)
	length2 := dx*dx + dy*dy
	return func(x, y int) bool {
		px, py := float64(x-x0), float64(y-y0)
		t := 0.0
		if length2 > 0 {
			t = min(max((px*dx+py*dy)/length2, 0), 1)
		}
		ex, ey := px-t*dx, py-t*dy
		return ex*ex+ey*ey <= r2
	}
}

// PrintText writes s starting at (x, y), clipped to width cells.
func PrintText(dst CellWriter, x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		if width <= 0 {
			return
		}
		dst.SetContent(x, y, r, nil, style)
		x++
		width--
	}
}
