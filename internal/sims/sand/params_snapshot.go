package sand

import "sandfall/internal/core"

// Parameters reports the world configuration and live counters for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.size.W),
				core.IntParam("h", "Height", w.size.H),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.StringParam("scene", "Scene", w.cfg.Scene),
			},
		},
		{
			Name: "Schedule",
			Params: []core.Parameter{
				core.IntParam("interaction_stride", "Reaction stride", w.cfg.InteractionStride),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				core.Int64Param("generation", "Generation", int64(w.gen)),
				core.IntParam("particles", "Particles", w.particles),
				core.IntParam("dynamic", "Animated cells", w.DynamicCount()),
			},
		},
	}}
}

// ParameterControls lists the knobs the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "interaction_stride",
		Label:  "Reaction stride",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    1,
		Max:    8,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter updates an adjustable integer knob. It must be called
// between ticks.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "interaction_stride":
		w.cfg.InteractionStride = min(max(value, 1), 8)
		return true
	}
	return false
}

// Census counts cells per material.
func (w *World) Census() map[MaterialID]int {
	counts := make(map[MaterialID]int)
	for i := range w.cells {
		counts[w.cells[i].Material]++
	}
	return counts
}
