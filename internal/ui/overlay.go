//go:build ebiten

package ui

import (
	"image/color"

	"sandfall/internal/render"
	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	cursorColor   = color.RGBA{R: 200, G: 200, B: 208, A: 200}
	eraseColor    = color.RGBA{R: 190, G: 66, B: 66, A: 200}
	dynamicTint   = color.RGBA{R: 90, G: 60, B: 0, A: 90}
	previewStroke = float32(1)
)

// Overlay draws the brush cursor, pending shapes and the optional animated
// cell mask on top of the grid.
type Overlay struct {
	world       *sand.World
	scale       int
	showDynamic bool
	mask        []bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(world *sand.World, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{world: world, scale: scale}
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDynamic = !o.showDynamic
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, painter *render.GridPainter, sel Selection, erasing bool) {
	if o.showDynamic {
		o.mask = o.world.DynamicMask(o.mask)
		painter.BlitMask(screen, o.mask, dynamicTint, o.scale)
	}
	col := cursorColor
	if erasing {
		col = eraseColor
	}
	s := float32(o.scale)
	if sel.Preview {
		switch sel.Mode {
		case "rect":
			x0, x1 := min(sel.X0, sel.X1), max(sel.X0, sel.X1)
			y0, y1 := min(sel.Y0, sel.Y1), max(sel.Y0, sel.Y1)
			vector.StrokeRect(screen, float32(x0)*s, float32(y0)*s,
				float32(x1-x0+1)*s, float32(y1-y0+1)*s, previewStroke, col, false)
		default:
			half := s / 2
			width := max(float32(2*sel.Radius+1)*s, previewStroke)
			vector.StrokeLine(screen, float32(sel.X0)*s+half, float32(sel.Y0)*s+half,
				float32(sel.X1)*s+half, float32(sel.Y1)*s+half, width, withAlpha(col, 80), false)
		}
	}
	if !sel.OnGrid {
		return
	}
	cx := float32(sel.CursorX)*s + s/2
	cy := float32(sel.CursorY)*s + s/2
	r := float32(sel.Radius)*s + s/2
	if sel.Shape == sand.BrushSquare {
		vector.StrokeRect(screen, cx-r, cy-r, 2*r, 2*r, previewStroke, col, false)
		return
	}
	vector.StrokeCircle(screen, cx, cy, r, previewStroke, col, false)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := float64(a) / float64(c.A)
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}
