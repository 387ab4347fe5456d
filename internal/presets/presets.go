// Package presets registers ready-made growth scenes with the simulation
// registry. Each scene pairs a mask shape with seeding defaults.
package presets

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"venation/internal/colonize"
	"venation/internal/core"
	"venation/internal/mask"
	"venation/internal/maskimg"
)

// ErrUnknownPreset is returned by Engine for unregistered names.
var ErrUnknownPreset = errors.New("presets: unknown preset")

// Shape builds the mask for a w×h scene.
type Shape func(w, h int) *mask.Mask

type preset struct {
	shape    Shape
	defaults map[string]string
}

var scenes = map[string]preset{
	"canvas": {
		shape:    mask.Full,
		defaults: map[string]string{"tips": "3", "attractors": "1500"},
	},
	"ellipse": {
		shape:    Ellipse,
		defaults: map[string]string{"tips": "1", "attractors": "1200"},
	},
	"notch": {
		shape:    Notch,
		defaults: map[string]string{"tips": "2", "attractors": "1000", "convex": "false"},
	},
	"ampersand": {
		shape: func(w, h int) *mask.Mask { return Text("&", w, h) },
		defaults: map[string]string{
			"tips":              "4",
			"attractors":        "2000",
			"convex":            "false",
			"attraction_radius": "48",
			"absorption_radius": "6",
		},
	},
}

func init() {
	for name, p := range scenes {
		p := p
		core.Register(name, func(cfg map[string]string) core.Sim {
			return p.build(cfg)
		})
	}
}

func (p preset) build(overrides map[string]string) *colonize.Engine {
	merged := maps.Clone(p.defaults)
	maps.Copy(merged, overrides)
	cfg := colonize.FromMap(merged)
	e := colonize.NewWithConfig(cfg, p.shape(cfg.Width, cfg.Height))
	e.Reset(cfg.Seed)
	return e
}

// Engine builds the named scene with overrides applied over its defaults.
func Engine(name string, overrides map[string]string) (*colonize.Engine, error) {
	p, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.build(overrides), nil
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Mask builds the named scene's mask at w×h.
func Mask(name string, w, h int) (*mask.Mask, error) {
	p, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.shape(w, h), nil
}

// Defaults returns a copy of the scene's configuration overrides.
func Defaults(name string) (map[string]string, bool) {
	p, ok := scenes[name]
	if !ok {
		return nil, false
	}
	return maps.Clone(p.defaults), true
}

// Ellipse is an ellipse inscribed in the area with a small margin.
func Ellipse(w, h int) *mask.Mask {
	cx, cy := float64(w)/2, float64(h)/2
	rx, ry := 0.45*float64(w), 0.45*float64(h)
	return mask.FromFunc(w, h, func(x, y int) bool {
		dx := (float64(x) + 0.5 - cx) / rx
		dy := (float64(y) + 0.5 - cy) / ry
		return dx*dx+dy*dy <= 1
	})
}

// Notch is a square with a slot cut down from the top edge, forming a
// non-convex U.
func Notch(w, h int) *mask.Mask {
	margin := w / 20
	slotL, slotR := w*9/20, w*11/20
	slotBottom := h * 7 / 10
	return mask.FromFunc(w, h, func(x, y int) bool {
		if x < margin || x >= w-margin || y < margin || y >= h-margin {
			return false
		}
		return !(x >= slotL && x < slotR && y < slotBottom)
	})
}

// Text renders s as a letter mask, falling back to a full mask when s has
// nothing drawable.
func Text(s string, w, h int) *mask.Mask {
	m, err := maskimg.FromText(s, w, h)
	if err != nil {
		return mask.Full(w, h)
	}
	return m
}
