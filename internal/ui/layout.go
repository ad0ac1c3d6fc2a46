package ui

import (
	"fmt"
	"image"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// Selection is the tool state the HUD and overlay display.
type Selection struct {
	Material sand.MaterialID
	Radius   int
	Shape    sand.BrushShape
	Mode     string

	// Pending line or rectangle, in grid cells.
	Preview        bool
	X0, Y0, X1, Y1 int

	CursorX, CursorY int
	OnGrid           bool
}

const (
	swatchSize    = 18
	swatchGap     = 4
	swatchColumns = 7
)

// swatchRect returns the panel-local rectangle of palette entry i.
func swatchRect(i, top int) image.Rectangle {
	col := i % swatchColumns
	row := i / swatchColumns
	x := panelPadding + col*(swatchSize+swatchGap)
	y := top + row*(swatchSize+swatchGap)
	return image.Rect(x, y, x+swatchSize, y+swatchSize)
}

// swatchAt maps a panel-local point to a palette index, or -1.
func swatchAt(px, py, top, n int) int {
	for i := 0; i < n; i++ {
		if pointInRect(px, py, swatchRect(i, top)) {
			return i
		}
	}
	return -1
}

// paletteHeight is the vertical space taken by n swatches.
func paletteHeight(n int) int {
	rows := (n + swatchColumns - 1) / swatchColumns
	if rows == 0 {
		return 0
	}
	return rows*(swatchSize+swatchGap) - swatchGap
}

// statLines formats the read-only groups of a snapshot as label/value rows.
func statLines(snap core.ParameterSnapshot, skip map[string]bool) []string {
	var lines []string
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			if skip[p.Key] {
				continue
			}
			lines = append(lines, fmt.Sprintf("%-16s %s", p.Label, p.Value))
		}
	}
	return lines
}

func describe(sel Selection) string {
	return fmt.Sprintf("%s r%d %s %s", sel.Material, sel.Radius, sel.Shape, sel.Mode)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	textLine       = 15
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
