package sand

// Movement probabilities, each an independent per-tick Bernoulli trial.
const (
	PowderSinkChance     = 0.40
	LiquidSinkChance     = 0.50
	LiquidPressureChance = 0.05
	GasRiseChance        = 0.80
	GasDiagonalChance    = 0.50
	GasDriftChance       = 0.20
	FireRiseChance       = 0.40
	FireFlickerChance    = 0.15
	SolidSinkChance      = 0.15

	// ExplosionPush is how many cells further out a shockwave throws a neighbor.
	ExplosionPush = 2
)

// Interaction probabilities, rolled once per qualifying neighbor.
const (
	IceMeltChance   = 0.05
	WaterBoilChance = 0.10
	// IceMeltMargin is how far above ice's melt temperature a neighbor must be
	// to melt it without being fire or lava.
	IceMeltMargin = 50

	WoodIgniteChance     = 0.02
	CharcoalSeedChance   = 0.30
	OilIgniteChance      = 0.15
	GasIgniteChance      = 0.50
	GrassIgniteChance    = 0.05
	CharcoalIgniteChance = 0.01

	SandMudChance    = 0.05
	DirtGrassChance  = 0.001
	LavaQuenchChance = 0.30

	GrassSpreadChance = 0.002
	PlantGrowChance   = 0.001

	SparkChance     = 0.50
	SparkJumpChance = 0.30

	ErosionChance = 0.0005
)

// BrushDensity is the chance each cell under a brush stamp is painted.
const BrushDensity = 0.85
