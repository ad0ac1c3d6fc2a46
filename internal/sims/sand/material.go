package sand

import "strings"

// MaterialID tags the substance stored in a cell.
type MaterialID uint8

const (
	Air MaterialID = iota
	Wall
	Stone
	Metal
	Sand
	Dirt
	Mud
	Charcoal
	Water
	Oil
	Lava
	Ice
	Wood
	Grass
	Plant
	Steam
	Smoke
	Gas
	Fire
	Explosion
	Electricity

	materialCount
)

// State is the physical state a material moves by.
type State uint8

const (
	StateSolid State = iota
	StatePowder
	StateLiquid
	StateGas
	StateEnergy
)

func (s State) String() string {
	switch s {
	case StateSolid:
		return "solid"
	case StatePowder:
		return "powder"
	case StateLiquid:
		return "liquid"
	case StateGas:
		return "gas"
	case StateEnergy:
		return "energy"
	default:
		return "unknown"
	}
}

// AmbientTemp is the temperature of a cell whose material does not set one.
const AmbientTemp = 20

// Material is the immutable definition of a substance. Values returned by
// Lookup point into a shared table and must not be modified.
type Material struct {
	ID      MaterialID
	Name    string
	Color   Color
	Density int
	State   State

	Immovable  bool
	Flammable  bool
	Conductive bool
	Ignites    bool
	Explosive  bool
	Glows      bool

	Viscosity    int
	Lifetime     int
	Conductivity float64
	BurnChance   float64

	BaseTemp      int
	MeltTemp      int
	BurnTemp      int
	EvaporateTemp int
	CondenseTemp  int

	MeltsTo      MaterialID
	EvaporatesTo MaterialID
	CondensesTo  MaterialID
	BurnsTo      MaterialID
	Produces     MaterialID
}

// Passable reports whether powders may slide past this material.
func (m *Material) Passable() bool {
	return m.ID == Air || m.State == StateGas
}

var registry = buildRegistry()

// palette lists the user-placeable materials in display order.
var palette = []MaterialID{
	Sand, Water, Stone, Wood, Fire, Oil, Lava, Ice, Dirt, Grass, Plant,
	Gas, Steam, Smoke, Metal, Electricity, Explosion, Charcoal, Mud, Wall,
}

func buildRegistry() [materialCount]Material {
	defs := []Material{
		{ID: Air, Name: "Air", Color: Fixed(0, 0, 0)},
		{ID: Wall, Name: "Wall", Color: Fixed(58, 58, 68), Density: 1000, Immovable: true},
		{ID: Stone, Name: "Stone", Color: Fixed(128, 128, 128), Density: 30, Immovable: true, MeltTemp: 1100, MeltsTo: Lava},
		{ID: Metal, Name: "Metal", Color: Fixed(170, 175, 185), Density: 40, Immovable: true, Conductive: true, Conductivity: 0.9, MeltTemp: 1500, MeltsTo: Lava},
		{ID: Sand, Name: "Sand", Color: Fixed(220, 195, 120), Density: 15, State: StatePowder},
		{ID: Dirt, Name: "Dirt", Color: Fixed(110, 80, 50), Density: 14, State: StatePowder},
		{ID: Mud, Name: "Mud", Color: Fixed(82, 60, 40), Density: 16, State: StatePowder, Conductive: true, Conductivity: 0.2},
		{ID: Charcoal, Name: "Charcoal", Color: Fixed(42, 36, 36), Density: 9, State: StatePowder, Flammable: true, BurnChance: CharcoalIgniteChance, BurnTemp: 350, BurnsTo: Fire},
		{ID: Water, Name: "Water", Color: Fixed(40, 100, 220), Density: 10, State: StateLiquid, Viscosity: 1, Conductive: true, Conductivity: 0.4, EvaporateTemp: 100, EvaporatesTo: Steam},
		{ID: Oil, Name: "Oil", Color: Fixed(92, 70, 30), Density: 8, State: StateLiquid, Viscosity: 2, Flammable: true, BurnChance: OilIgniteChance, BurnTemp: 200, BurnsTo: Fire},
		{ID: Lava, Name: "Lava", Color: Procedural(GenLava), Density: 14, State: StateLiquid, Viscosity: 6, Ignites: true, Glows: true, BaseTemp: 1200, CondenseTemp: 700, CondensesTo: Stone},
		{ID: Ice, Name: "Ice", Color: Fixed(180, 220, 255), Density: 9, BaseTemp: -10, MeltTemp: 0, MeltsTo: Water},
		{ID: Wood, Name: "Wood", Color: Fixed(120, 80, 40), Density: 6, Immovable: true, Flammable: true, BurnChance: WoodIgniteChance, BurnTemp: 300, BurnsTo: Fire},
		{ID: Grass, Name: "Grass", Color: Fixed(60, 170, 60), Density: 5, Immovable: true, Flammable: true, BurnChance: GrassIgniteChance, BurnTemp: 250, BurnsTo: Fire},
		{ID: Plant, Name: "Plant", Color: Fixed(30, 130, 50), Density: 5, Immovable: true, Flammable: true, BurnChance: GrassIgniteChance, BurnTemp: 250, BurnsTo: Fire},
		{ID: Steam, Name: "Steam", Color: Fixed(200, 200, 215), Density: -3, State: StateGas, Lifetime: 240, BaseTemp: 110, CondenseTemp: 90, CondensesTo: Water},
		{ID: Smoke, Name: "Smoke", Color: Fixed(90, 90, 90), Density: -2, State: StateGas, Lifetime: 80, BaseTemp: 60},
		{ID: Gas, Name: "Gas", Color: Fixed(150, 200, 120), Density: -4, State: StateGas, Flammable: true, Explosive: true, BurnChance: GasIgniteChance, BurnTemp: 150, BurnsTo: Explosion},
		{ID: Fire, Name: "Fire", Color: Procedural(GenFire), Density: -1, State: StateEnergy, Lifetime: 40, Ignites: true, Glows: true, BaseTemp: 800, Produces: Smoke},
		{ID: Explosion, Name: "Explosion", Color: Procedural(GenBlast), Density: -1, State: StateEnergy, Lifetime: 8, Ignites: true, Glows: true, BaseTemp: 2000},
		{ID: Electricity, Name: "Electricity", Color: Procedural(GenSpark), Density: -1, State: StateEnergy, Lifetime: 4, Ignites: true, Glows: true, BaseTemp: 300},
	}

	var table [materialCount]Material
	for _, d := range defs {
		if d.BaseTemp == 0 {
			d.BaseTemp = AmbientTemp
		}
		if d.State == StateLiquid && d.Viscosity < 1 {
			d.Viscosity = 1
		}
		table[d.ID] = d
	}
	return table
}

// Lookup returns the definition for id. Unknown ids resolve to Air.
func Lookup(id MaterialID) *Material {
	if id >= materialCount {
		return &registry[Air]
	}
	return &registry[id]
}

// ColorOf resolves one color sample for id.
func ColorOf(id MaterialID, rnd Random) [4]byte {
	c := Lookup(id).Color.Sample(rnd)
	return [4]byte{c.R, c.G, c.B, c.A}
}

// Materials returns the placeable materials in palette order.
func Materials() []MaterialID {
	return append([]MaterialID(nil), palette...)
}

// ByName resolves a material by case-insensitive name.
func ByName(name string) (MaterialID, bool) {
	for i := range registry {
		if strings.EqualFold(registry[i].Name, name) {
			return registry[i].ID, true
		}
	}
	return Air, false
}

func (id MaterialID) String() string {
	return Lookup(id).Name
}
