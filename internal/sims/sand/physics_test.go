package sand

import "testing"

func TestSandColumnSettlesOnStone(t *testing.T) {
	const width, height = 32, 24
	w := newTestWorld(t, width, height, seeded(42))
	w.DrawRect(0, height-1, width-1, height-1, Stone)
	w.DrawRect(16, 0, 16, 9, Sand)
	before := w.ParticleCount()

	for i := 0; i < 10*height; i++ {
		w.Tick()
	}

	if w.ParticleCount() != before {
		t.Fatalf("ParticleCount changed from %d to %d", before, w.ParticleCount())
	}
	sand := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if w.Get(x, y).Material != Sand {
				continue
			}
			sand++
			if w.isAir(x, y+1) {
				t.Fatalf("sand at (%d,%d) rests on air", x, y)
			}
		}
	}
	if sand != 10 {
		t.Fatalf("found %d sand cells, want 10", sand)
	}
	// A settled pile spreads sideways rather than staying a tower.
	if w.Get(16, height-11).Material == Sand {
		t.Fatal("sand column never slid into a pile")
	}
}

func TestWaterSinksBelowOil(t *testing.T) {
	const height = 20
	w := newTestWorld(t, 5, height, seeded(8))
	w.DrawRect(1, 0, 1, height-1, Stone)
	w.DrawRect(3, 0, 3, height-1, Stone)
	w.DrawRect(1, height-1, 3, height-1, Stone)
	// Inverted: water on top of oil.
	w.DrawRect(2, 5, 2, 9, Water)
	w.DrawRect(2, 10, 2, height-2, Oil)

	for i := 0; i < 1500; i++ {
		w.Tick()
	}

	lowestOil, highestWater := -1, height
	for y := 0; y < height; y++ {
		switch w.Get(2, y).Material {
		case Oil:
			lowestOil = max(lowestOil, y)
		case Water:
			highestWater = min(highestWater, y)
		}
	}
	if lowestOil < 0 || highestWater == height {
		t.Fatal("liquids vanished from the column")
	}
	if lowestOil >= highestWater {
		t.Fatalf("oil reaches y=%d but water starts at y=%d", lowestOil, highestWater)
	}
}

func TestOilAboveWaterStaysStratified(t *testing.T) {
	w := newTestWorld(t, 12, 12, seeded(3))
	w.DrawRect(0, 11, 11, 11, Stone)
	w.DrawRect(0, 8, 11, 10, Water)
	w.DrawRect(0, 6, 11, 7, Oil)

	for i := 0; i < 300; i++ {
		w.Tick()
	}
	for x := 0; x < 12; x++ {
		for y := 8; y <= 10; y++ {
			if w.Get(x, y).Material != Water {
				t.Fatalf("(%d,%d) = %v, want water", x, y, w.Get(x, y).Material)
			}
		}
	}
}

func TestCellsMoveOncePerTick(t *testing.T) {
	w := newTestWorld(t, 7, 10, fixedRandom{})
	w.Set(3, 0, Sand)
	w.Set(1, 8, Steam)

	w.Tick()
	if w.Get(3, 1).Material != Sand || w.Get(3, 0).Material != Air {
		t.Fatal("sand should fall exactly one row")
	}
	if w.Get(1, 7).Material != Steam || w.Get(1, 8).Material != Air {
		t.Fatal("steam should rise exactly one row")
	}
}

func TestPowderSlidesDiagonally(t *testing.T) {
	w := newTestWorld(t, 5, 3, fixedRandom{})
	w.DrawRect(0, 2, 4, 2, Stone)
	w.Set(2, 1, Stone)
	w.Set(2, 0, Sand)

	w.Tick()
	// fixedRandom picks the left direction first.
	if w.Get(1, 1).Material != Sand {
		t.Fatalf("sand should slide down-left, grid row 1: %v %v %v",
			w.Get(1, 1).Material, w.Get(2, 1).Material, w.Get(3, 1).Material)
	}

	w2 := newTestWorld(t, 5, 3, fixedRandom{})
	w2.DrawRect(0, 2, 4, 2, Stone)
	w2.Set(2, 1, Stone)
	w2.Set(1, 1, Stone)
	w2.Set(2, 0, Sand)
	w2.Tick()
	if w2.Get(3, 1).Material != Sand {
		t.Fatal("blocked left slide should retry to the right")
	}
}

func TestIceFloatsOnWater(t *testing.T) {
	w := newTestWorld(t, 3, 6, fixedRandom{})
	w.DrawRect(0, 5, 2, 5, Stone)
	w.DrawRect(0, 3, 2, 4, Water)
	w.Set(1, 2, Ice)

	for i := 0; i < 20; i++ {
		w.Tick()
	}
	if w.Get(1, 2).Material != Ice {
		t.Fatalf("ice should rest on the water surface, got %v", w.Get(1, 2).Material)
	}
}

func TestGasCondensesWhenLifeRunsOut(t *testing.T) {
	w := newTestWorld(t, 3, 3, seeded(1))
	w.DrawRect(0, 0, 2, 2, Stone)
	w.Set(1, 1, Steam, WithLife(2))

	w.Tick()
	if c := w.Get(1, 1); c.Material != Steam || c.Life != 1 {
		t.Fatalf("after one tick got %v life %d", c.Material, c.Life)
	}
	w.Tick()
	if got := w.Get(1, 1).Material; got != Water {
		t.Fatalf("steam should condense to water, got %v", got)
	}
}

func TestFireBurnsOutToSmoke(t *testing.T) {
	w := newTestWorld(t, 3, 3, seeded(1))
	w.DrawRect(0, 0, 2, 2, Stone)
	w.Set(1, 1, Fire, WithLife(1))
	w.Tick()
	if got := w.Get(1, 1).Material; got != Smoke {
		t.Fatalf("fire should produce smoke, got %v", got)
	}
	if w.DynamicCount() != 0 {
		t.Fatal("smoke is not animated, dynamic index should be empty")
	}
}

func TestExplosionContainment(t *testing.T) {
	for _, tc := range []struct {
		name     string
		neighbor MaterialID
	}{
		{"air", Air},
		{"immovable", Stone},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, 11, 11, seeded(6))
			w.DrawRect(4, 4, 6, 6, tc.neighbor)
			w.Set(5, 5, Explosion)
			life := Lookup(Explosion).Lifetime

			snapshot := func() []MaterialID {
				out := make([]MaterialID, 0, 121)
				for y := 0; y < 11; y++ {
					for x := 0; x < 11; x++ {
						if x == 5 && y == 5 {
							continue
						}
						out = append(out, w.Get(x, y).Material)
					}
				}
				return out
			}
			want := snapshot()

			for tick := 1; tick <= life; tick++ {
				w.Tick()
				got := snapshot()
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("tick %d: cell %d changed from %v to %v", tick, i, want[i], got[i])
					}
				}
				c := w.Get(5, 5)
				if tick < life && (c.Material != Explosion || c.Life != life-tick) {
					t.Fatalf("tick %d: center %v life %d", tick, c.Material, c.Life)
				}
			}
			if got := w.Get(5, 5).Material; got != Air {
				t.Fatalf("explosion should clear to air, got %v", got)
			}
		})
	}
}

func TestExplosionPushesMovableNeighbors(t *testing.T) {
	w := newTestWorld(t, 11, 11, seeded(6))
	w.Set(5, 5, Explosion)
	w.Set(6, 5, Wood)
	w.DrawRect(0, 6, 10, 6, Stone)
	w.Set(4, 5, Ice)

	w.Tick()
	if w.Get(4, 5).Material != Air || w.Get(2, 5).Material != Ice {
		t.Fatalf("ice should be thrown two cells left, row: %v %v %v",
			w.Get(2, 5).Material, w.Get(3, 5).Material, w.Get(4, 5).Material)
	}
	if w.Get(6, 5).Material != Wood {
		t.Fatal("immovable wood must not be pushed")
	}
}

// moveOnce runs the movement rule for one cell as a fresh generation would.
func moveOnce(w *World, x, y int) {
	w.stamp++
	w.update(x, y)
}

func TestLiquidSpreadsTowardOpenSide(t *testing.T) {
	w := newTestWorld(t, 5, 3, fixedRandom{})
	w.DrawRect(0, 2, 4, 2, Stone)
	w.Set(1, 1, Stone)
	w.Set(2, 1, Water)
	moveOnce(w, 2, 1)
	if w.Get(3, 1).Material != Water || w.Get(2, 1).Material != Air {
		t.Fatal("water blocked on the left should flow right")
	}

	w = newTestWorld(t, 5, 3, fixedRandom{})
	w.DrawRect(0, 2, 4, 2, Stone)
	w.Set(2, 1, Water)
	moveOnce(w, 2, 1)
	if w.Get(1, 1).Material != Water {
		t.Fatal("with both sides open the rolled direction wins")
	}
}

func TestLiquidPressureHopsIntoOpenColumn(t *testing.T) {
	pool := func(rnd Random, holes ...int) *World {
		w := newTestWorld(t, 6, 3, rnd)
		w.DrawRect(0, 2, 5, 2, Stone)
		for _, x := range holes {
			w.Set(x, 2, Air)
		}
		w.DrawRect(1, 1, 3, 1, Water)
		return w
	}

	w := pool(fixedRandom{}, 4)
	moveOnce(w, 2, 1)
	if w.Get(4, 1).Material != Water || w.Get(2, 1).Material != Air {
		t.Fatal("middle water should hop right over its neighbor into the open column")
	}

	w = pool(fixedRandom{}, 0, 4)
	moveOnce(w, 2, 1)
	if w.Get(0, 1).Material != Water || w.Get(4, 1).Material != Air {
		t.Fatal("when both sides qualify the rolled direction is tried first")
	}

	w = pool(fixedRandom{f: LiquidPressureChance}, 4)
	moveOnce(w, 2, 1)
	if w.Get(2, 1).Material != Water {
		t.Fatal("a failed pressure roll must leave the cell in place")
	}
}

func TestViscosityThrottlesLiquids(t *testing.T) {
	for _, tc := range []struct {
		name  string
		id    MaterialID
		roll  float64
		moved bool
	}{
		{"oil held", Oil, 0.4, false},
		{"oil flows", Oil, 0.5, true},
		{"lava held", Lava, 0.8, false},
		{"water never held", Water, 0.99, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, 1, 2, fixedRandom{f: tc.roll})
			w.Set(0, 0, tc.id)
			moveOnce(w, 0, 0)
			if got := w.Get(0, 1).Material == tc.id; got != tc.moved {
				t.Fatalf("moved = %v, want %v", got, tc.moved)
			}
		})
	}
}

func TestDenseCellsSinkThroughLighterLiquid(t *testing.T) {
	for _, tc := range []struct {
		name   string
		top    MaterialID
		liquid MaterialID
		roll   float64
		sinks  bool
	}{
		{"sand into water", Sand, Water, 0, true},
		{"sand roll fails", Sand, Water, PowderSinkChance, false},
		{"ice into oil", Ice, Oil, 0.1, true},
		{"ice roll fails", Ice, Oil, SolidSinkChance, false},
		{"ice floats on water", Ice, Water, 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, 1, 3, fixedRandom{f: tc.roll})
			w.Set(0, 0, tc.top)
			w.Set(0, 1, tc.liquid)
			w.Set(0, 2, Stone)
			moveOnce(w, 0, 0)
			sank := w.Get(0, 1).Material == tc.top && w.Get(0, 0).Material == tc.liquid
			if sank != tc.sinks {
				t.Fatalf("sank = %v, want %v", sank, tc.sinks)
			}
		})
	}
}

func TestGasRisesDiagonallyThenDrifts(t *testing.T) {
	w := newTestWorld(t, 3, 3, fixedRandom{})
	w.Set(1, 1, Stone)
	w.Set(1, 2, Steam)
	moveOnce(w, 1, 2)
	if w.Get(0, 1).Material != Steam {
		t.Fatal("capped gas should rise diagonally")
	}

	w = newTestWorld(t, 3, 3, fixedRandom{})
	w.DrawRect(0, 1, 2, 1, Stone)
	w.Set(1, 2, Steam)
	moveOnce(w, 1, 2)
	if w.Get(0, 2).Material != Steam {
		t.Fatal("gas under a ceiling should drift sideways")
	}

	w = newTestWorld(t, 3, 3, fixedRandom{f: GasDriftChance})
	w.DrawRect(0, 1, 2, 1, Stone)
	w.Set(1, 2, Steam)
	moveOnce(w, 1, 2)
	if w.Get(1, 2).Material != Steam {
		t.Fatal("failed drift roll must leave gas in place")
	}
}

func TestFireRisesAndFlickers(t *testing.T) {
	w := newTestWorld(t, 3, 3, fixedRandom{})
	w.Set(1, 2, Fire)
	moveOnce(w, 1, 2)
	if w.Get(1, 1).Material != Fire {
		t.Fatal("fire should rise into open air")
	}

	w = newTestWorld(t, 3, 3, fixedRandom{f: 0.1})
	w.Set(1, 1, Stone)
	w.Set(1, 2, Fire)
	moveOnce(w, 1, 2)
	if w.Get(0, 2).Material != Fire {
		t.Fatal("capped fire should flicker sideways")
	}

	w = newTestWorld(t, 3, 3, fixedRandom{f: FireFlickerChance})
	w.Set(1, 1, Stone)
	w.Set(1, 2, Fire)
	moveOnce(w, 1, 2)
	if c := w.Get(1, 2); c.Material != Fire || c.Life != Lookup(Fire).Lifetime-1 {
		t.Fatalf("fire should stay and burn down, got %v life %d", c.Material, c.Life)
	}
}

func TestScanDirectionAlternates(t *testing.T) {
	// Two grains race for one gap; whichever column is scanned first wins.
	race := func(gen int) *World {
		w := newTestWorld(t, 3, 2, fixedRandom{})
		for i := 0; i < gen; i++ {
			w.Tick()
		}
		w.Set(0, 1, Stone)
		w.Set(2, 1, Stone)
		w.Set(0, 0, Sand)
		w.Set(2, 0, Sand)
		w.Tick()
		if w.Get(1, 1).Material != Sand {
			t.Fatalf("generation %d: gap was not filled", gen)
		}
		return w
	}

	if w := race(0); w.Get(0, 0).Material != Air || w.Get(2, 0).Material != Sand {
		t.Fatal("even generations scan left to right")
	}
	if w := race(1); w.Get(2, 0).Material != Air || w.Get(0, 0).Material != Sand {
		t.Fatal("odd generations scan right to left")
	}
}

func TestInteractionsSkipOddGenerations(t *testing.T) {
	w := newTestWorld(t, 12, 12, fixedRandom{})
	w.Tick()
	// Lava sits on the lattice for generation 1.
	w.Set(2, 3, Wall)
	w.Set(5, 3, Wall)
	w.DrawRect(2, 4, 5, 4, Wall)
	w.Set(3, 3, Lava)
	w.Set(4, 3, Water)

	w.Tick()
	if w.Get(3, 3).Material != Lava || w.Get(4, 3).Material != Water {
		t.Fatal("no reaction may run on an odd generation")
	}
	w.Tick()
	if got := w.Get(4, 3).Material; got != Steam {
		t.Fatalf("water beside lava should boil on the next even generation, got %v", got)
	}
}
