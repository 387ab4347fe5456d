package ui

import (
	"math"
	"strconv"

	"venation/internal/core"
)

const missingValue = "--"

// reading is the parsed state of one HUD control.
type reading struct {
	text string
	num  float64 // int and float controls
	on   bool    // bool controls
	ok   bool
}

// readControl parses the snapshot value for ctrl. Int parameters that carry a
// description (such as the association mode) display the description.
func readControl(ctrl core.ParameterControl, p core.Parameter) reading {
	switch ctrl.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			break
		}
		r := reading{text: strconv.Itoa(v), num: float64(v), ok: true}
		if p.Description != "" {
			r.text = p.Description
		}
		return r
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			break
		}
		return reading{text: formatFloat(ctrl, v), num: v, ok: true}
	case core.ParamTypeBool:
		v, err := strconv.ParseBool(p.Value)
		if err != nil {
			break
		}
		r := reading{text: "off", on: v, ok: true}
		if v {
			r.text = "on"
		}
		return r
	}
	return reading{text: missingValue}
}

// nudge returns the value one step from current in direction dir, clamped to
// the control's bounds, and whether it differs from current.
func nudge(ctrl core.ParameterControl, current float64, dir int) (float64, bool) {
	if dir == 0 {
		return current, false
	}
	if ctrl.Type == core.ParamTypeInt {
		step := math.Round(ctrl.Step)
		if step <= 0 {
			step = 1
		}
		target := math.Round(ctrl.Clamp(current + float64(dir)*step))
		return target, target != current
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := ctrl.Clamp(current + float64(dir)*step)
	return target, math.Abs(target-current) >= 1e-9
}

// formatFloat prints value with a precision suited to the control's step.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	var precision int
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	case step < 1:
		precision = 1
	default:
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
