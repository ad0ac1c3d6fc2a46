//go:build !ebiten

package ui

import (
	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, Selection) (sand.MaterialID, bool) { return 0, false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int, bool) {}
