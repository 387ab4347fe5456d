package colonize

import (
	"strconv"

	"venation/internal/core"
)

// Parameters reports the engine's tunables grouped for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	params := e.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Area",
			Params: []core.Parameter{
				intParam("w", "Width", e.mask.Width()),
				intParam("h", "Height", e.mask.Height()),
				int64Param("seed", "Seed", e.cfg.Seed),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				modeParam(e.Mode()),
				boolParam("convex", "Convex", e.cfg.Convex),
				boolParam("disturb", "Disturb direction", e.cfg.DisturbDirection),
				floatParam("attraction_radius", "Attraction radius", params.AttractionRadius),
				floatParam("absorption_radius", "Absorption radius", params.AbsorptionRadius),
				floatParam("step_length", "Step length", params.StepLength),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("tips", "Tips", len(e.tips)),
				intParam("attractors", "Attractors", len(e.attractors)),
				intParam("steps", "Steps", e.steps),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "mode", Label: "Mode (0 open, 1 closed)", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "attraction_radius", Label: "Attraction radius", Type: core.ParamTypeFloat, Step: 8, Min: 1, Max: 1024, HasMin: true, HasMax: true},
		{Key: "absorption_radius", Label: "Absorption radius", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 256, HasMin: true, HasMax: true},
		{Key: "step_length", Label: "Step length", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 32, HasMin: true, HasMax: true},
		{Key: "convex", Label: "Convex", Type: core.ParamTypeBool},
		{Key: "disturb", Label: "Disturb direction", Type: core.ParamTypeBool},
	}
}

// SetFloatParameter updates a geometric parameter, clamped to its control
// bounds. The absorption radius never exceeds the attraction radius.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := e.control(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "attraction_radius":
		e.cfg.Params.AttractionRadius = value
		if e.cfg.Params.AbsorptionRadius > value {
			e.cfg.Params.AbsorptionRadius = value
		}
	case "absorption_radius":
		if value > e.cfg.Params.AttractionRadius {
			value = e.cfg.Params.AttractionRadius
		}
		e.cfg.Params.AbsorptionRadius = value
	case "step_length":
		e.cfg.Params.StepLength = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates integer-valued parameters. Mode is exposed as 0
// (open) or 1 (closed).
func (e *Engine) SetIntParameter(key string, value int) bool {
	if key != "mode" {
		return false
	}
	switch value {
	case 0:
		e.SetMode(ModeOpen)
	case 1:
		e.SetMode(ModeClosed)
	default:
		return false
	}
	return true
}

// SetBoolParameter toggles the convex and disturb flags.
func (e *Engine) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "convex":
		e.cfg.Convex = value
	case "disturb":
		e.cfg.DisturbDirection = value
	default:
		return false
	}
	return true
}

func (e *Engine) control(key string) (core.ParameterControl, bool) {
	for _, c := range e.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func modeParam(m Mode) core.Parameter {
	return core.Parameter{
		Key:         "mode",
		Label:       "Mode",
		Type:        core.ParamTypeInt,
		Value:       strconv.Itoa(int(m)),
		Description: m.String(),
	}
}
