package sand

// update runs the movement rule for the cell at (x, y). Each cell moves at
// most once per generation: the stamp travels with the cell through swaps.
func (w *World) update(x, y int) {
	i := w.size.Index(x, y)
	c := &w.cells[i]
	if c.Material == Air || c.stamp == w.stamp {
		return
	}
	m := Lookup(c.Material)
	if m.Immovable {
		return
	}
	c.stamp = w.stamp

	switch m.State {
	case StatePowder:
		w.updatePowder(x, y, m)
	case StateLiquid:
		w.updateLiquid(x, y, m)
	case StateGas:
		w.updateGas(x, y, m)
	case StateEnergy:
		w.updateEnergy(x, y, m)
	case StateSolid:
		w.updateSolid(x, y, m)
	}
}

func (w *World) isAir(x, y int) bool {
	return w.InBounds(x, y) && w.cells[w.size.Index(x, y)].Material == Air
}

// lighterLiquid reports whether (x, y) holds a liquid less dense than m.
func (w *World) lighterLiquid(x, y int, m *Material) bool {
	n := w.MaterialAt(x, y)
	return n.State == StateLiquid && n.Density < m.Density
}

func (w *World) updatePowder(x, y int, m *Material) {
	if w.isAir(x, y+1) {
		w.Swap(x, y, x, y+1)
		return
	}
	if w.lighterLiquid(x, y+1, m) && w.chance(PowderSinkChance) {
		w.Swap(x, y, x, y+1)
		return
	}

	d := w.dir()
	for try := 0; try < 2; try++ {
		side := w.MaterialAt(x+d, y)
		if side.Passable() && (w.isAir(x+d, y+1) || w.lighterLiquid(x+d, y+1, m)) {
			w.Swap(x, y, x+d, y+1)
			return
		}
		d = -d
	}
}

func (w *World) updateLiquid(x, y int, m *Material) {
	if m.Viscosity > 1 && w.chance(1-1/float64(m.Viscosity)) {
		return
	}
	if w.isAir(x, y+1) {
		w.Swap(x, y, x, y+1)
		return
	}
	if w.lighterLiquid(x, y+1, m) && w.chance(LiquidSinkChance) {
		w.Swap(x, y, x, y+1)
		return
	}

	d := w.dir()
	for try := 0; try < 2; try++ {
		if w.isAir(x+d, y+1) {
			w.Swap(x, y, x+d, y+1)
			return
		}
		d = -d
	}

	below := w.MaterialAt(x, y+1)
	supported := below.State == StateSolid || below.State == StatePowder ||
		(below.State == StateLiquid && below.Density >= m.Density)
	if !supported {
		return
	}

	left, right := w.isAir(x-1, y), w.isAir(x+1, y)
	switch {
	case left && right:
		w.Swap(x, y, x+d, y)
		return
	case left:
		w.Swap(x, y, x-1, y)
		return
	case right:
		w.Swap(x, y, x+1, y)
		return
	}

	// Pressure: hop over a neighbor of the same liquid into an open column.
	if !w.chance(LiquidPressureChance) {
		return
	}
	for try := 0; try < 2; try++ {
		if w.MaterialAt(x+d, y).ID == m.ID && w.isAir(x+2*d, y) && w.isAir(x+2*d, y+1) {
			w.Swap(x, y, x+2*d, y)
			return
		}
		d = -d
	}
}

func (w *World) updateGas(x, y int, m *Material) {
	if m.Lifetime > 0 {
		c := &w.cells[w.size.Index(x, y)]
		c.Life--
		if c.Life <= 0 {
			w.Set(x, y, m.CondensesTo)
			return
		}
	}

	if w.isAir(x, y-1) && w.chance(GasRiseChance) {
		w.Swap(x, y, x, y-1)
		return
	}
	d := w.dir()
	for try := 0; try < 2; try++ {
		if w.isAir(x+d, y-1) && w.chance(GasDiagonalChance) {
			w.Swap(x, y, x+d, y-1)
			return
		}
		d = -d
	}
	if w.isAir(x+d, y) && w.chance(GasDriftChance) {
		w.Swap(x, y, x+d, y)
	}
}

func (w *World) updateEnergy(x, y int, m *Material) {
	c := &w.cells[w.size.Index(x, y)]
	c.Life--
	if c.Life <= 0 {
		w.Set(x, y, m.Produces)
		return
	}

	switch m.ID {
	case Fire:
		if w.isAir(x, y-1) && w.chance(FireRiseChance) {
			w.Swap(x, y, x, y-1)
			return
		}
		if w.chance(FireFlickerChance) {
			d := w.dir()
			if w.isAir(x+d, y) {
				w.Swap(x, y, x+d, y)
			}
		}
	case Explosion:
		w.shockwave(x, y)
	}
}

// shockwave throws each movable neighbor ExplosionPush cells further out
// along its direction from the blast, when the landing cell is empty.
func (w *World) shockwave(x, y int) {
	for _, o := range neighborhood {
		nx, ny := x+o.dx, y+o.dy
		n := w.MaterialAt(nx, ny)
		if n.ID == Air || n.Immovable || n.ID == Explosion {
			continue
		}
		tx, ty := nx+o.dx*ExplosionPush, ny+o.dy*ExplosionPush
		if !w.isAir(tx, ty) {
			continue
		}
		w.Swap(nx, ny, tx, ty)
		w.cells[w.size.Index(tx, ty)].stamp = w.stamp
	}
}

func (w *World) updateSolid(x, y int, m *Material) {
	if w.isAir(x, y+1) {
		w.Swap(x, y, x, y+1)
		return
	}
	// A solid floats on denser liquids and slowly sinks through lighter ones.
	if w.lighterLiquid(x, y+1, m) && w.chance(SolidSinkChance) {
		w.Swap(x, y, x, y+1)
	}
}
