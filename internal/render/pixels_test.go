package render

import (
	"image/color"
	"testing"
)

func TestRGBAAt(t *testing.T) {
	buf := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	if got := RGBAAt(buf, 2, 1, 1); got != (color.RGBA{R: 13, G: 14, B: 15, A: 16}) {
		t.Fatalf("RGBAAt(1,1) = %v", got)
	}
	for _, p := range [][2]int{{-1, 0}, {2, 0}, {0, 2}} {
		if got := RGBAAt(buf, 2, p[0], p[1]); got != (color.RGBA{}) {
			t.Fatalf("out-of-range read %v = %v", p, got)
		}
	}
}

func TestBlend(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	if Blend(a, b, 0) != a || Blend(a, b, 1) != b {
		t.Fatal("weights 0 and 1 must return the inputs")
	}
	if got := Blend(a, b, 0.5); got != (color.RGBA{R: 100, G: 100, B: 100, A: 255}) {
		t.Fatalf("half blend = %v", got)
	}
}

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 12)
	for i := range buf {
		buf[i] = 9
	}
	tint := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	FillMaskRGBA(buf, []bool{true, false, true}, tint)
	want := []byte{1, 2, 3, 4, 0, 0, 0, 0, 1, 2, 3, 4}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}
	// A short buffer is never overrun.
	FillMaskRGBA(make([]byte, 4), []bool{true, true}, tint)
}
