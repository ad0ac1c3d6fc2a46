package app

import (
	"sandfall/internal/sims/sand"
	"sandfall/internal/ui"
)

// MaxRadius bounds the brush size.
const MaxRadius = 24

// ToolMode selects how a pointer drag edits the world.
type ToolMode uint8

const (
	ToolBrush ToolMode = iota
	ToolLine
	ToolRect
)

func (m ToolMode) String() string {
	switch m {
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	default:
		return "brush"
	}
}

// Editor is the edit surface the tools drive. *sand.World implements it.
type Editor interface {
	DrawBrush(cx, cy int, id sand.MaterialID, radius int, shape sand.BrushShape)
	DrawLine(x0, y0, x1, y1 int, id sand.MaterialID, radius int)
	DrawRect(x0, y0, x1, y1 int, id sand.MaterialID)
}

// Tools turns pointer gestures in grid coordinates into world edits. Edits
// are applied immediately, so callers must only feed it between ticks.
type Tools struct {
	Material sand.MaterialID
	Radius   int
	Shape    sand.BrushShape
	Mode     ToolMode

	palette []sand.MaterialID
	down    bool
	erase   bool
	startX  int
	startY  int
	lastX   int
	lastY   int
}

// NewTools returns brush tools with the first palette material selected.
func NewTools() *Tools {
	pal := sand.Materials()
	return &Tools{Material: pal[0], Radius: 3, palette: pal}
}

// Palette returns the selectable materials in order.
func (t *Tools) Palette() []sand.MaterialID { return t.palette }

// Active reports whether a gesture is in progress.
func (t *Tools) Active() bool { return t.down }

// Erasing reports whether the current gesture paints air.
func (t *Tools) Erasing() bool { return t.down && t.erase }

// Selection snapshots the tool state for display.
func (t *Tools) Selection() ui.Selection {
	sel := ui.Selection{
		Material: t.Material,
		Radius:   t.Radius,
		Shape:    t.Shape,
		Mode:     t.Mode.String(),
	}
	sel.X0, sel.Y0, sel.X1, sel.Y1, sel.Preview = t.Preview()
	return sel
}

func (t *Tools) ink() sand.MaterialID {
	if t.erase {
		return sand.Air
	}
	return t.Material
}

// Press starts a gesture at (x, y). With erase set the gesture paints air.
func (t *Tools) Press(ed Editor, x, y int, erase bool) {
	t.down, t.erase = true, erase
	t.startX, t.startY = x, y
	t.lastX, t.lastY = x, y
	if t.Mode == ToolBrush {
		ed.DrawBrush(x, y, t.ink(), t.Radius, t.Shape)
	}
}

// Move continues a gesture. Brush strokes are joined with a line so fast
// pointer motion leaves no gaps.
func (t *Tools) Move(ed Editor, x, y int) {
	if !t.down {
		return
	}
	if t.Mode == ToolBrush && (x != t.lastX || y != t.lastY) {
		if t.Shape == sand.BrushSquare {
			ed.DrawBrush(x, y, t.ink(), t.Radius, t.Shape)
		} else {
			ed.DrawLine(t.lastX, t.lastY, x, y, t.ink(), t.Radius)
		}
	}
	t.lastX, t.lastY = x, y
}

// Release ends a gesture, committing line and rectangle shapes.
func (t *Tools) Release(ed Editor, x, y int) {
	if !t.down {
		return
	}
	switch t.Mode {
	case ToolLine:
		ed.DrawLine(t.startX, t.startY, x, y, t.ink(), t.Radius)
	case ToolRect:
		ed.DrawRect(t.startX, t.startY, x, y, t.ink())
	default:
		t.Move(ed, x, y)
	}
	t.down, t.erase = false, false
}

// Preview returns the pending shape of a line or rectangle gesture.
func (t *Tools) Preview() (x0, y0, x1, y1 int, ok bool) {
	if !t.down || t.Mode == ToolBrush {
		return 0, 0, 0, 0, false
	}
	return t.startX, t.startY, t.lastX, t.lastY, true
}

// Cycle moves the selection delta steps through the palette, wrapping.
func (t *Tools) Cycle(delta int) {
	n := len(t.palette)
	at := 0
	for i, id := range t.palette {
		if id == t.Material {
			at = i
			break
		}
	}
	t.Material = t.palette[((at+delta)%n+n)%n]
}

// Select picks the palette entry at index i, ignoring out-of-range indexes.
func (t *Tools) Select(i int) bool {
	if i < 0 || i >= len(t.palette) {
		return false
	}
	t.Material = t.palette[i]
	return true
}

// Grow changes the brush radius by delta within [0, MaxRadius].
func (t *Tools) Grow(delta int) {
	t.Radius = min(max(t.Radius+delta, 0), MaxRadius)
}

// ToggleShape flips between circle and square brushes.
func (t *Tools) ToggleShape() {
	if t.Shape == sand.BrushCircle {
		t.Shape = sand.BrushSquare
	} else {
		t.Shape = sand.BrushCircle
	}
}

// NextMode cycles brush, line and rectangle tools.
func (t *Tools) NextMode() {
	t.Mode = (t.Mode + 1) % 3
}
