package sand

// BrushShape selects the footprint of a brush stamp.
type BrushShape uint8

const (
	BrushCircle BrushShape = iota
	BrushSquare
)

func (s BrushShape) String() string {
	if s == BrushSquare {
		return "square"
	}
	return "circle"
}

// DrawBrush paints id around (cx, cy). Each covered in-range cell is written
// independently with probability BrushDensity, giving an irregular edge.
// Must not be called while a tick is running.
func (w *World) DrawBrush(cx, cy int, id MaterialID, radius int, shape BrushShape) {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if shape == BrushCircle && dx*dx+dy*dy > r2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if !w.InBounds(x, y) {
				continue
			}
			if w.chance(BrushDensity) {
				w.Set(x, y, id)
			}
		}
	}
}

// DrawLine stamps a circular brush at every step of the discretized line
// from (x0, y0) to (x1, y1).
func (w *World) DrawLine(x0, y0, x1, y1 int, id MaterialID, radius int) {
	walkLine(x0, y0, x1, y1, func(x, y int) {
		w.DrawBrush(x, y, id, radius, BrushCircle)
	})
}

// DrawRect fills the rectangle spanned by two corners, inclusive, with no
// edge noise.
func (w *World) DrawRect(x0, y0, x1, y1 int, id MaterialID) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w.size.W-1), min(y1, w.size.H-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w.Set(x, y, id)
		}
	}
}

// walkLine visits the Bresenham line between two points, endpoints included.
func walkLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
