package sand

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"sandfall/internal/core"
	"sandfall/pkg/logger"
	rng "sandfall/pkg/core"
)

// ErrInvalidSize is returned when a world is constructed with a non-positive
// dimension.
var ErrInvalidSize = errors.New("sand: world dimensions must be positive")

// Cell is one grid position's state.
type Cell struct {
	Material MaterialID
	// Life counts ticks left before a timed transition; 0 when unused.
	Life int
	Temp int

	stamp uint32
}

// boundary is what Get returns outside the grid: an implicit solid wall.
var boundary = Cell{Material: Wall, Temp: AmbientTemp}

// CellOption overrides a material default when a cell is written.
type CellOption func(*Cell)

// WithLife overrides the material lifetime.
func WithLife(life int) CellOption {
	return func(c *Cell) { c.Life = life }
}

// WithTemp overrides the material base temperature.
func WithTemp(temp int) CellOption {
	return func(c *Cell) { c.Temp = temp }
}

// World owns the cell grid, its packed RGBA color buffer and the index of
// cells whose color is procedural.
type World struct {
	cfg  Config
	size core.Size

	cells []Cell
	pix   []byte
	dyn   cellSet

	particles int
	gen       uint64
	stamp     uint32

	rnd Random
}

// New returns an empty world with the provided dimensions.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Scene = ""
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options, with
// cfg.Scene applied.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.InteractionStride <= 0 {
		cfg.InteractionStride = 1
	}
	size := core.Size{W: cfg.Width, H: cfg.Height}
	total := size.Area()
	w := &World{
		cfg:   cfg,
		size:  size,
		cells: make([]Cell, total),
		pix:   make([]byte, 4*total),
		dyn:   newCellSet(total),
		rnd:   cfg.Random,
	}
	if w.rnd == nil {
		w.rnd = rng.NewRNG(cfg.Seed)
	}
	w.clear()
	if err := w.LoadScene(cfg.Scene); err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{
		"width":  size.W,
		"height": size.H,
		"seed":   cfg.Seed,
		"scene":  cfg.Scene,
	}).Debug("sand world created")
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.size }

// Config returns the options the world was built with.
func (w *World) Config() Config { return w.cfg }

// ColorBuffer exposes the packed RGBA buffer, row-major, 4 bytes per cell.
// Callers must treat it as read-only.
func (w *World) ColorBuffer() []byte { return w.pix }

// Pixels satisfies core.Sim.
func (w *World) Pixels() []byte { return w.pix }

// ParticleCount returns the number of non-air cells.
func (w *World) ParticleCount() int { return w.particles }

// DynamicCount returns the number of cells whose color is recomputed every tick.
func (w *World) DynamicCount() int { return len(w.dyn.members) }

// DynamicMask flags the animated cells into dst, reallocating it when its
// length does not match the grid.
func (w *World) DynamicMask(dst []bool) []bool {
	if len(dst) != len(w.cells) {
		dst = make([]bool, len(w.cells))
	} else {
		clear(dst)
	}
	for _, i := range w.dyn.members {
		dst[i] = true
	}
	return dst
}

// Generation returns the number of completed ticks since the last reset.
func (w *World) Generation() uint64 { return w.gen }

// Random exposes the world's random source for collaborators such as brushes.
func (w *World) Random() Random { return w.rnd }

// InBounds reports whether (x, y) is a grid coordinate.
func (w *World) InBounds(x, y int) bool { return w.size.InBounds(x, y) }

// Get returns a copy of the cell at (x, y), or an immovable wall cell when
// out of range.
func (w *World) Get(x, y int) Cell {
	if !w.size.InBounds(x, y) {
		return boundary
	}
	return w.cells[w.size.Index(x, y)]
}

// MaterialAt is shorthand for Lookup(Get(x, y).Material).
func (w *World) MaterialAt(x, y int) *Material {
	if !w.size.InBounds(x, y) {
		return Lookup(Wall)
	}
	return Lookup(w.cells[w.size.Index(x, y)].Material)
}

// Set replaces the cell at (x, y) with the defaults of id, then applies opts.
// Out-of-range writes are ignored. Unknown ids are written as Air.
func (w *World) Set(x, y int, id MaterialID, opts ...CellOption) {
	if !w.size.InBounds(x, y) {
		return
	}
	w.setIndex(w.size.Index(x, y), id, opts...)
}

func (w *World) setIndex(i int, id MaterialID, opts ...CellOption) {
	m := Lookup(id)
	prev := w.cells[i].Material
	c := Cell{Material: m.ID, Life: m.Lifetime, Temp: m.BaseTemp}
	for _, opt := range opts {
		opt(&c)
	}
	w.cells[i] = c

	switch {
	case prev == Air && m.ID != Air:
		w.particles++
	case prev != Air && m.ID == Air:
		w.particles--
	}
	if m.Color.Dynamic() {
		w.dyn.add(i)
	} else {
		w.dyn.remove(i)
	}
	w.paint(i, m)
}

// Swap exchanges the full state of two cells, including their color bytes
// and dynamic-index membership. Out-of-range coordinates are ignored.
func (w *World) Swap(x1, y1, x2, y2 int) {
	if !w.size.InBounds(x1, y1) || !w.size.InBounds(x2, y2) {
		return
	}
	a, b := w.size.Index(x1, y1), w.size.Index(x2, y2)
	if a == b {
		return
	}
	w.cells[a], w.cells[b] = w.cells[b], w.cells[a]
	pa, pb := w.pix[4*a:4*a+4], w.pix[4*b:4*b+4]
	for k := 0; k < 4; k++ {
		pa[k], pb[k] = pb[k], pa[k]
	}
	w.dyn.swap(a, b)
}

// Reset sets every cell to Air and clears the counters and dynamic index. A
// non-zero seed reseeds the random source unless one was injected.
func (w *World) Reset(seed int64) {
	if seed != 0 && w.cfg.Random == nil {
		w.cfg.Seed = seed
		w.rnd = rng.NewRNG(seed)
	}
	w.clear()
	logger.Log.WithField("seed", seed).Debug("sand world reset")
}

// Restart resets the world and reloads the configured scene.
func (w *World) Restart(seed int64) {
	w.Reset(seed)
	if err := w.LoadScene(w.cfg.Scene); err != nil {
		logger.Log.WithError(err).Warn("scene reload failed")
	}
}

func (w *World) clear() {
	for i := range w.cells {
		w.cells[i] = Cell{Material: Air, Temp: AmbientTemp}
	}
	w.particles = 0
	w.gen = 0
	w.dyn.clear()
	air := Lookup(Air)
	for i := range w.cells {
		w.paint(i, air)
	}
}

// Tick advances the world by one generation: movement, then reactions on a
// thinned subset of cells, then a refresh of procedural colors.
func (w *World) Tick() {
	w.stamp = uint32(w.gen%math.MaxUint32) + 1
	w.physicsPass()
	// Reactions run on even generations only. The lattice they visit rotates
	// (see interactionPass); a fixed (x+y)%stride == 0 lattice would never
	// evaluate a pair like lava at (5,5) beside water at (6,5).
	if w.gen%2 == 0 {
		w.interactionPass()
	}
	w.refreshDynamic()
	w.gen++
}

// Step advances a single generation. It is the manual advance used while
// paused and satisfies core.Sim.
func (w *World) Step() { w.Tick() }

func (w *World) physicsPass() {
	W, H := w.size.W, w.size.H
	leftToRight := w.gen%2 == 0
	for y := H - 1; y >= 0; y-- {
		for k := 0; k < W; k++ {
			x := k
			if !leftToRight {
				x = W - 1 - k
			}
			w.update(x, y)
		}
	}
}

// interactionPass visits cells on every stride-th anti-diagonal. The lattice
// shifts by one diagonal per pass so every cell is evaluated within stride
// passes.
func (w *World) interactionPass() {
	stride := w.cfg.InteractionStride
	phase := int((w.gen / 2) % uint64(stride))
	W, H := w.size.W, w.size.H
	for y := H - 1; y >= 0; y-- {
		start := ((phase-y)%stride + stride) % stride
		for x := start; x < W; x += stride {
			w.interact(x, y)
		}
	}
}

func (w *World) refreshDynamic() {
	for _, i := range w.dyn.members {
		w.paint(int(i), Lookup(w.cells[i].Material))
	}
}

func (w *World) paint(i int, m *Material) {
	c := m.Color.Sample(w.rnd)
	p := w.pix[4*i : 4*i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

func (w *World) chance(p float64) bool {
	return w.rnd.Float64() < p
}

// dir returns -1 or +1.
func (w *World) dir() int {
	if w.rnd.IntN(2) == 0 {
		return -1
	}
	return 1
}

// cellSet is a dense index set with O(1) add, remove and swap.
type cellSet struct {
	members []int32
	slot    []int32
}

func newCellSet(n int) cellSet {
	s := cellSet{slot: make([]int32, n)}
	for i := range s.slot {
		s.slot[i] = -1
	}
	return s
}

func (s *cellSet) has(i int) bool { return s.slot[i] >= 0 }

func (s *cellSet) add(i int) {
	if s.slot[i] >= 0 {
		return
	}
	s.slot[i] = int32(len(s.members))
	s.members = append(s.members, int32(i))
}

func (s *cellSet) remove(i int) {
	at := s.slot[i]
	if at < 0 {
		return
	}
	last := s.members[len(s.members)-1]
	s.members[at] = last
	s.slot[last] = at
	s.members = s.members[:len(s.members)-1]
	s.slot[i] = -1
}

func (s *cellSet) swap(a, b int) {
	sa, sb := s.slot[a], s.slot[b]
	if sa >= 0 {
		s.members[sa] = int32(b)
	}
	if sb >= 0 {
		s.members[sb] = int32(a)
	}
	s.slot[a], s.slot[b] = sb, sa
}

func (s *cellSet) clear() {
	for _, m := range s.members {
		s.slot[m] = -1
	}
	s.members = s.members[:0]
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
