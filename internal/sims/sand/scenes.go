package sand

import (
	"fmt"
	"sort"
)

// scenes holds preset layouts. Each builder paints an empty world using the
// brush tools, scaling to the grid size.
var scenes = map[string]func(w *World){
	"empty":     func(*World) {},
	"hourglass": sceneHourglass,
	"volcano":   sceneVolcano,
	"layers":    sceneLayers,
	"bonfire":   sceneBonfire,
	"circuit":   sceneCircuit,
}

// SceneNames lists the available presets in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadScene paints the named preset over the current grid. An empty name is
// a no-op.
func (w *World) LoadScene(name string) error {
	if name == "" {
		return nil
	}
	build, ok := scenes[name]
	if !ok {
		return fmt.Errorf("sand: unknown scene %q", name)
	}
	build(w)
	w.cfg.Scene = name
	return nil
}

func (w *World) floor(id MaterialID, thickness int) {
	W, H := w.size.W, w.size.H
	w.DrawRect(0, H-thickness, W-1, H-1, id)
}

func sceneHourglass(w *World) {
	W, H := w.size.W, w.size.H
	mid := W / 2
	neck := H / 2
	gap := max(1, W/40)
	wall := func(x, y int) { w.Set(x, y, Stone) }
	walkLine(mid/4, neck/4, mid-gap-1, neck, wall)
	walkLine(W-1-mid/4, neck/4, mid+gap+1, neck, wall)
	// Fill the funnel between its walls, row by row.
	for y := neck/4 + 1; y < neck-2; y++ {
		left, right := -1, -1
		for x := 0; x < W; x++ {
			if w.MaterialAt(x, y).ID == Stone {
				if left < 0 {
					left = x
				}
				right = x
			}
		}
		for x := left + 1; left >= 0 && x < right; x++ {
			if w.isAir(x, y) {
				w.Set(x, y, Sand)
			}
		}
	}
	w.floor(Stone, 2)
}

func sceneVolcano(w *World) {
	W, H := w.size.W, w.size.H
	w.floor(Stone, 2)
	peak := H / 3
	base := W / 3
	cx := W / 2
	for y := peak; y < H; y++ {
		half := (y - peak) * base / max(1, H-peak)
		w.DrawRect(cx-half, y, cx+half, y, Stone)
	}
	w.DrawRect(cx-2, peak-4, cx+2, peak-1, Lava)
	w.DrawRect(cx-1, peak, cx+1, H-3, Lava)
	w.DrawRect(0, H-H/6, W/6, H-3, Water)
	w.DrawRect(W-W/6, H-H/8, W-1, H-3, Water)
	w.DrawRect(W/6+2, H-H/10, cx-base/2, H-3, Dirt)
}

func sceneLayers(w *World) {
	W, H := w.size.W, w.size.H
	w.floor(Wall, 1)
	w.DrawRect(0, 0, 0, H-1, Wall)
	w.DrawRect(W-1, 0, W-1, H-1, Wall)
	band := max(1, H/6)
	top := H - 1 - 3*band
	// Heaviest on top so the bands visibly sort themselves.
	w.DrawRect(1, top, W-2, top+band-1, Sand)
	w.DrawRect(1, top+band, W-2, top+2*band-1, Water)
	w.DrawRect(1, top+2*band, W-2, H-2, Oil)
	w.DrawRect(W/3, top-band, 2*W/3, top-band/2, Ice)
}

func sceneBonfire(w *World) {
	W, H := w.size.W, w.size.H
	w.floor(Dirt, max(2, H/10))
	ground := H - max(2, H/10) - 1
	w.DrawRect(0, ground, W-1, ground, Grass)
	cx := W / 2
	for i := 0; i < 4; i++ {
		w.DrawRect(cx-8+i*2, ground-8+i, cx+8-i*2, ground-8+i, Wood)
	}
	w.DrawRect(cx-1, ground-7, cx+1, ground-1, Wood)
	w.DrawRect(cx-2, ground-11, cx+2, ground-9, Fire)
	w.DrawRect(W/8, ground-6, W/8+1, ground-1, Plant)
	w.DrawRect(W-W/8, ground-12, W-W/8+6, ground-10, Oil)
	w.DrawRect(W-W/8-1, ground-9, W-W/8+7, ground-9, Stone)
}

func sceneCircuit(w *World) {
	W, H := w.size.W, w.size.H
	w.floor(Stone, 2)
	y := H / 2
	w.DrawRect(W/8, y, W-W/8, y, Metal)
	w.DrawRect(W-W/8, y-H/4, W-W/8, y, Metal)
	w.DrawRect(W-W/8-4, y-H/4-6, W-W/8+4, y-H/4-1, Gas)
	w.DrawRect(W/8, y+1, W/4, y+H/8, Water)
	w.DrawRect(W/8-1, y-1, W/8, y-1, Electricity)
}
