package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
	"sandfall/pkg/logger"
)

const frameInterval = 16 * time.Millisecond

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// Viewer drives a world from a tcell screen. Events and ticks are handled on
// one goroutine so edits always land between generations.
type Viewer struct {
	screen tcell.Screen
	world  *sand.World
	tools  *app.Tools
	pace   *core.FixedStep

	paused   bool
	stepOnce bool
	seed     int64
}

// NewViewer wires a world and its tools to an initialized screen.
func NewViewer(screen tcell.Screen, world *sand.World, tools *app.Tools, tps int) *Viewer {
	return &Viewer{
		screen: screen,
		world:  world,
		tools:  tools,
		pace:   core.NewFixedStep(tps),
		seed:   world.Config().Seed,
	}
}

// Paused reports whether automatic ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Handle applies one input event. It returns false when the user asked to
// quit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	t := v.tools
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		t.ToggleShape()
		return true
	case tcell.KeyRune:
	default:
		return true
	}
	switch r := ev.Rune(); r {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
		if !v.paused {
			v.pace.Resync()
		}
		logger.Log.WithField("paused", v.paused).Debug("pause toggled")
	case 'n':
		v.stepOnce = true
	case 'r':
		v.restart(v.seed)
	case 's':
		v.restart(time.Now().UnixNano())
	case 'c':
		v.world.Reset(0)
	case ']':
		t.Cycle(1)
	case '[':
		t.Cycle(-1)
	case '+', '=':
		t.Grow(1)
	case '-':
		t.Grow(-1)
	case 't':
		t.NextMode()
	default:
		if r >= '1' && r <= '9' {
			t.Select(int(r - '1'))
		}
	}
	return true
}

func (v *Viewer) restart(seed int64) {
	v.seed = seed
	v.world.Restart(seed)
	logger.Log.WithFields(logrus.Fields{"seed": seed, "scene": v.world.Config().Scene}).Info("world restarted")
}

// gridAt maps a terminal cell to the top grid cell it shows.
func (v *Viewer) gridAt(col, row int) (int, int, bool) {
	x, y := col, row*2
	return x, y, v.world.InBounds(x, y)
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	if btn&tcell.WheelUp != 0 {
		v.tools.Grow(1)
	}
	if btn&tcell.WheelDown != 0 {
		v.tools.Grow(-1)
	}
	btn &= tcell.Button1 | tcell.Button2
	col, row := ev.Position()
	x, y, onGrid := v.gridAt(col, row)
	x, y = v.world.Size().Clamp(x, y)

	switch {
	case btn != 0 && !v.tools.Active():
		if onGrid {
			v.tools.Press(v.world, x, y, btn&tcell.Button2 != 0)
		}
	case btn != 0:
		v.tools.Move(v.world, x, y)
	case v.tools.Active():
		v.tools.Release(v.world, x, y)
	}
}

// Tick advances the world when the pacing clock allows it.
func (v *Viewer) Tick() bool {
	if v.stepOnce || (!v.paused && v.pace.ShouldStep()) {
		v.stepOnce = false
		v.world.Step()
		return true
	}
	return false
}

// Draw repaints the grid and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	size := v.world.Size()
	var hl func(x, y int) bool
	if x0, y0, x1, y1, ok := v.tools.Preview(); ok {
		hl = previewMask(v.tools.Mode == app.ToolRect, x0, y0, x1, y1, v.tools.Radius)
	}
	PaintHighlight(v.screen, v.world.ColorBuffer(), size, hl)
	w, _ := v.screen.Size()
	PrintText(v.screen, 0, Rows(size.H), w, v.Status(), statusStyle)
	v.screen.Show()
}

// Status summarizes the tool selection and world counters.
func (v *Viewer) Status() string {
	t := v.tools
	state := "run"
	if v.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s r%d %s %s | gen %d | %d particles | %s",
		t.Material, t.Radius, t.Shape, t.Mode, v.world.Generation(), v.world.ParticleCount(), state)
}

// Run processes events and frames until the user quits or ctx ends.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}
