package sand

import "testing"

func TestLookupFallsBackToAir(t *testing.T) {
	for _, id := range []MaterialID{materialCount, 200, 255} {
		if got := Lookup(id); got.ID != Air {
			t.Fatalf("Lookup(%d) = %v, want air", id, got.Name)
		}
	}
	if ColorOf(200, seeded(1)) != ColorOf(Air, seeded(1)) {
		t.Fatal("unknown id should resolve to the air color")
	}
}

func TestRegistryTable(t *testing.T) {
	animated := map[MaterialID]bool{Fire: true, Lava: true, Electricity: true, Explosion: true}
	for id := MaterialID(0); id < materialCount; id++ {
		m := Lookup(id)
		if m.ID != id {
			t.Fatalf("table slot %d holds %v", id, m.ID)
		}
		if m.Name == "" {
			t.Fatalf("material %d has no name", id)
		}
		if m.State == StateLiquid && m.Viscosity < 1 {
			t.Fatalf("%s: liquid viscosity %d < 1", m.Name, m.Viscosity)
		}
		if m.Color.Dynamic() != animated[id] {
			t.Fatalf("%s: dynamic color = %v", m.Name, m.Color.Dynamic())
		}
		if m.Flammable && (m.BurnChance <= 0 || m.BurnsTo == Air) {
			t.Fatalf("%s: flammable without a burn rule", m.Name)
		}
		if (m.State == StateEnergy) && m.Lifetime <= 0 {
			t.Fatalf("%s: energy needs a lifetime", m.Name)
		}
	}
	if !Lookup(Wall).Immovable || !Lookup(Stone).Immovable {
		t.Fatal("wall and stone must be immovable")
	}
	if Lookup(Oil).Density >= Lookup(Water).Density {
		t.Fatal("oil must be lighter than water")
	}
}

func TestFixedColorsVerbatim(t *testing.T) {
	c := Lookup(Sand).Color
	a, b := c.Sample(seeded(1)), c.Sample(seeded(2))
	if a != b || !c.Accepts(a) {
		t.Fatalf("fixed color varied: %v vs %v", a, b)
	}
}

func TestProceduralColorsVaryWithinBounds(t *testing.T) {
	rnd := seeded(4)
	for _, id := range []MaterialID{Fire, Lava, Electricity, Explosion} {
		col := Lookup(id).Color
		distinct := map[[3]uint8]bool{}
		for i := 0; i < 50; i++ {
			px := col.Sample(rnd)
			if !col.Accepts(px) {
				t.Fatalf("%v sample %v out of bounds", id, px)
			}
			distinct[[3]uint8{px.R, px.G, px.B}] = true
		}
		if len(distinct) < 2 {
			t.Fatalf("%v color never varied", id)
		}
	}
}

func TestByNameAndPalette(t *testing.T) {
	id, ok := ByName("wAtEr")
	if !ok || id != Water {
		t.Fatalf("ByName(wAtEr) = %v, %v", id, ok)
	}
	if _, ok := ByName("unobtainium"); ok {
		t.Fatal("unknown name resolved")
	}
	pal := Materials()
	if len(pal) < 20 {
		t.Fatalf("palette has %d entries", len(pal))
	}
	pal[0] = Air
	if Materials()[0] == Air {
		t.Fatal("Materials must return a copy")
	}
}
