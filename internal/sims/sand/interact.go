package sand

type offset struct{ dx, dy int }

// neighborhood is the Moore neighborhood in the fixed order rules scan it.
var neighborhood = [8]offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// interact applies the first matching rule family to the cell at (x, y).
// Families are checked in order and stop at the first that fires, since the
// cell's identity may have changed.
func (w *World) interact(x, y int) {
	m := w.MaterialAt(x, y)
	if m.ID == Air || m.ID == Wall {
		return
	}
	switch {
	case w.phaseChange(x, y, m):
	case w.combust(x, y, m):
	case w.react(x, y, m):
	case w.grow(x, y, m):
	case w.conduct(x, y, m):
	case w.erode(x, y, m):
	}
}

func (w *World) phaseChange(x, y int, m *Material) bool {
	switch m.ID {
	case Ice:
		for _, o := range neighborhood {
			n := w.Get(x+o.dx, y+o.dy)
			hot := n.Material == Fire || n.Material == Lava || n.Temp-m.MeltTemp >= IceMeltMargin
			if hot && w.chance(IceMeltChance) {
				w.Set(x, y, m.MeltsTo)
				return true
			}
		}
	case Water:
		for _, o := range neighborhood {
			n := w.MaterialAt(x+o.dx, y+o.dy).ID
			if (n == Fire || n == Lava) && w.chance(WaterBoilChance) {
				w.Set(x, y, m.EvaporatesTo)
				return true
			}
		}
	}
	return false
}

func (w *World) combust(x, y int, m *Material) bool {
	if !m.Flammable {
		return false
	}
	for _, o := range neighborhood {
		n := w.MaterialAt(x+o.dx, y+o.dy)
		if n.ID != Fire && !n.Ignites {
			continue
		}
		if !w.chance(m.BurnChance) {
			continue
		}
		w.Set(x, y, m.BurnsTo)
		if m.ID == Wood && w.chance(CharcoalSeedChance) && w.isAir(x, y+1) {
			w.Set(x, y+1, Charcoal)
		}
		return true
	}
	return false
}

func (w *World) react(x, y int, m *Material) bool {
	switch m.ID {
	case Sand:
		if w.touching(x, y, Water) && w.chance(SandMudChance) {
			w.Set(x, y, Mud)
			return true
		}
	case Dirt:
		if w.isAir(x, y-1) && w.touching(x, y, Water) && w.chance(DirtGrassChance) {
			w.Set(x, y-1, Grass)
			return true
		}
	case Lava:
		for _, o := range neighborhood {
			nx, ny := x+o.dx, y+o.dy
			if w.MaterialAt(nx, ny).ID == Water && w.chance(LavaQuenchChance) {
				w.Set(x, y, m.CondensesTo)
				w.Set(nx, ny, Steam)
				return true
			}
		}
	case Water:
		for _, o := range neighborhood {
			if w.MaterialAt(x+o.dx, y+o.dy).ID == Lava && w.chance(LavaQuenchChance) {
				w.Set(x, y, Steam)
				return true
			}
		}
	}
	return false
}

func (w *World) grow(x, y int, m *Material) bool {
	switch m.ID {
	case Grass:
		for _, o := range neighborhood {
			nx, ny := x+o.dx, y+o.dy
			if w.MaterialAt(nx, ny).ID == Dirt && w.isAir(nx, ny-1) && w.chance(GrassSpreadChance) {
				w.Set(nx, ny-1, Grass)
				return true
			}
		}
	case Plant:
		if w.isAir(x, y-1) && w.touching(x, y, Water) && w.chance(PlantGrowChance) {
			w.Set(x, y-1, Plant)
			return true
		}
	}
	return false
}

// conduct lets electricity overwrite conductive neighbors. The conductor is
// consumed by the spark.
func (w *World) conduct(x, y int, m *Material) bool {
	if m.ID != Electricity {
		return false
	}
	sparked := false
	for _, o := range neighborhood {
		nx, ny := x+o.dx, y+o.dy
		n := w.MaterialAt(nx, ny)
		if !n.Conductive || n.ID == Electricity {
			continue
		}
		if w.chance(SparkChance) && w.chance(SparkJumpChance) {
			w.Set(nx, ny, Electricity)
			sparked = true
		}
	}
	return sparked
}

func (w *World) erode(x, y int, m *Material) bool {
	if m.ID != Water {
		return false
	}
	for _, o := range neighborhood {
		nx, ny := x+o.dx, y+o.dy
		n := w.MaterialAt(nx, ny).ID
		if (n == Sand || n == Dirt) && w.chance(ErosionChance) {
			w.Set(nx, ny, Mud)
			return true
		}
	}
	return false
}

// touching reports whether any neighbor of (x, y) holds id.
func (w *World) touching(x, y int, id MaterialID) bool {
	for _, o := range neighborhood {
		if w.MaterialAt(x+o.dx, y+o.dy).ID == id {
			return true
		}
	}
	return false
}
