//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/ui"
	"sandfall/pkg/logger"
)

// PanelWidth is the width in pixels of the HUD to the right of the grid.
const PanelWidth = 220

// Game adapts the sand world to the ebiten.Game interface. Input is applied
// before the tick in Update, so edits never interleave with a generation.
type Game struct {
	world   *sand.World
	tools   *Tools
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, tools *Tools, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := world.Size()
	return &Game{
		world:   world,
		tools:   tools,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, PanelWidth),
		overlay: ui.NewOverlay(world, scale),
		scale:   scale,
		seed:    world.Config().Seed,
	}
}

// Reset reinitializes the world and reloads its scene.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Restart(seed)
	g.tickOnce = false
	logger.Log.WithField("seed", seed).Info("world restarted")
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		logger.Log.WithField("paused", g.paused).Debug("pause toggled")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Reset(0)
	}

	g.handleTools()
	if id, ok := g.hud.Update(g.world.Size().W*g.scale, g.selection()); ok {
		g.tools.Material = id
	}
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleTools() {
	t := g.tools
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		t.Cycle(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		t.Cycle(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		t.ToggleShape()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		t.NextMode()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		t.Grow(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		t.Grow(-1)
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			t.Select(i)
		}
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		t.Grow(1)
	} else if dy < 0 {
		t.Grow(-1)
	}

	cx, cy := ebiten.CursorPosition()
	size := g.world.Size()
	gx, gy := cx/g.scale, cy/g.scale
	onGrid := cx >= 0 && cy >= 0 && size.InBounds(gx, gy)
	gx, gy = size.Clamp(gx, gy)

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if (left || right) && onGrid && !t.Active() {
		t.Press(g.world, gx, gy, right)
	}
	if t.Active() {
		t.Move(g.world, gx, gy)
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
			t.Release(g.world, gx, gy)
		}
	}
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (g *Game) selection() ui.Selection {
	sel := g.tools.Selection()
	cx, cy := ebiten.CursorPosition()
	sel.CursorX, sel.CursorY = cx/g.scale, cy/g.scale
	sel.OnGrid = cx >= 0 && cy >= 0 && g.world.InBounds(sel.CursorX, sel.CursorY)
	return sel
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.world.ColorBuffer(), g.scale)
	g.overlay.Draw(screen, g.painter, g.selection(), g.tools.Erasing())
	g.hud.Draw(screen, g.world.Size().W*g.scale, g.scale, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + PanelWidth, s.H * g.scale
}
