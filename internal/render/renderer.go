//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a packed RGBA cell buffer into an image and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	mask *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:    w,
		h:    h,
		img:  ebiten.NewImage(w, h),
		mask: ebiten.NewImage(w, h),
		buf:  make([]byte, 4*w*h),
	}
}

// Blit uploads pix and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, pix []byte, scale int) {
	if len(pix) != 4*gp.w*gp.h {
		return
	}
	gp.img.WritePixels(pix)
	dst.DrawImage(gp.img, scaled(scale))
}

// BlitMask draws a translucent tint over every flagged cell.
func (gp *GridPainter) BlitMask(dst *ebiten.Image, mask []bool, tint color.RGBA, scale int) {
	if len(mask) != gp.w*gp.h {
		return
	}
	FillMaskRGBA(gp.buf, mask, tint)
	gp.mask.WritePixels(gp.buf)
	dst.DrawImage(gp.mask, scaled(scale))
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

func scaled(scale int) *ebiten.DrawImageOptions {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	return op
}
