package core

// InBounds reports whether (x, y) lies inside [0,W)x[0,H).
func (s Size) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Index returns the linear row-major index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Coords converts a linear index back into coordinates.
func (s Size) Coords(i int) (int, int) {
	if s.W <= 0 {
		return 0, 0
	}
	return i % s.W, i / s.W
}

// Area returns the number of cells.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}

// Clamp limits (x, y) to the grid, returning the nearest in-range cell.
func (s Size) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= s.W {
		x = s.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= s.H {
		y = s.H - 1
	}
	return x, y
}
