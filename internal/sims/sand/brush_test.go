package sand

import "testing"

func TestDrawBrushShapes(t *testing.T) {
	tests := []struct {
		name   string
		shape  BrushShape
		radius int
		want   int
	}{
		{"circle r2", BrushCircle, 2, 13},
		{"square r2", BrushSquare, 2, 25},
		{"circle r0", BrushCircle, 0, 1},
		{"negative radius", BrushSquare, -3, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, 11, 11, fixedRandom{})
			w.DrawBrush(5, 5, Sand, tc.radius, tc.shape)
			if got := w.ParticleCount(); got != tc.want {
				t.Fatalf("painted %d cells, want %d", got, tc.want)
			}
		})
	}
}

func TestDrawBrushDensity(t *testing.T) {
	w := newTestWorld(t, 11, 11, fixedRandom{f: BrushDensity})
	w.DrawBrush(5, 5, Sand, 3, BrushSquare)
	if w.ParticleCount() != 0 {
		t.Fatal("a roll at the density threshold must not paint")
	}

	w = newTestWorld(t, 64, 64, seeded(12))
	w.DrawBrush(32, 32, Sand, 20, BrushSquare)
	frac := float64(w.ParticleCount()) / float64(41*41)
	if frac < 0.78 || frac > 0.92 {
		t.Fatalf("painted fraction %.3f, want about %.2f", frac, BrushDensity)
	}
}

func TestDrawBrushClipsAtEdges(t *testing.T) {
	w := newTestWorld(t, 6, 6, fixedRandom{})
	w.DrawBrush(0, 0, Water, 2, BrushSquare)
	if got := w.ParticleCount(); got != 9 {
		t.Fatalf("corner stamp painted %d cells, want 9", got)
	}
	w.DrawBrush(-10, -10, Water, 2, BrushSquare)
	if got := w.ParticleCount(); got != 9 {
		t.Fatal("stamp fully outside the grid must not paint")
	}
}

func TestDrawLineCoversEndpoints(t *testing.T) {
	w := newTestWorld(t, 12, 12, fixedRandom{})
	w.DrawLine(1, 1, 9, 5, Stone, 0)
	if w.Get(1, 1).Material != Stone || w.Get(9, 5).Material != Stone {
		t.Fatal("line endpoints not painted")
	}
	// Bresenham visits max(|dx|, |dy|)+1 cells.
	if got := w.ParticleCount(); got != 9 {
		t.Fatalf("line painted %d cells, want 9", got)
	}

	var steps int
	walkLine(3, 3, 3, 3, func(int, int) { steps++ })
	if steps != 1 {
		t.Fatalf("degenerate line visited %d cells", steps)
	}
}

func TestDrawRectAndErase(t *testing.T) {
	w := newTestWorld(t, 8, 8, seeded(1))
	w.DrawRect(6, 6, 2, 2, Oil)
	if got := w.ParticleCount(); got != 25 {
		t.Fatalf("rect painted %d cells, want 25", got)
	}
	w.DrawRect(-5, -5, -1, -1, Oil)
	if got := w.ParticleCount(); got != 25 {
		t.Fatal("rect outside the grid must not paint")
	}
	w.DrawRect(0, 0, 7, 7, Air)
	if w.ParticleCount() != 0 {
		t.Fatal("erasing with air should empty the grid")
	}
}
