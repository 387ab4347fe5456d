package presets

import (
	"errors"
	"slices"
	"testing"

	"venation/internal/colonize"
	"venation/internal/core"
	"venation/internal/geom"
)

func TestPresetsRegistered(t *testing.T) {
	names := core.SimNames()
	for _, want := range []string{"ampersand", "canvas", "ellipse", "notch"} {
		if !slices.Contains(names, want) {
			t.Fatalf("preset %q not registered, have %v", want, names)
		}
	}
}

func TestPresetSeedsInsideMask(t *testing.T) {
	for name := range scenes {
		t.Run(name, func(t *testing.T) {
			sim := core.Sims()[name](map[string]string{"w": "160", "h": "120"})
			e, ok := sim.(*colonize.Engine)
			if !ok {
				t.Fatalf("factory returned %T", sim)
			}
			if s := e.Size(); s.W != 160 || s.H != 120 {
				t.Fatalf("unexpected size %+v", s)
			}
			want, _ := Defaults(name)
			if got := len(e.Attractors()); want["attractors"] != "" && got == 0 {
				t.Fatal("preset should scatter attractors")
			}
			for _, a := range e.Attractors() {
				if !e.Mask().Contains(a.Pos) {
					t.Fatalf("attractor %v outside the %s mask", a.Pos, name)
				}
			}
			for _, tip := range e.Tips() {
				if !e.Mask().Contains(tip.Pos) {
					t.Fatalf("tip %v outside the %s mask", tip.Pos, name)
				}
			}
		})
	}
}

func TestEngineOverridesDefaults(t *testing.T) {
	e, err := Engine("notch", map[string]string{"w": "100", "h": "100", "attractors": "10", "mode": "closed"})
	if err != nil {
		t.Fatal(err)
	}
	if len(e.Attractors()) != 10 || e.Mode() != colonize.ModeClosed {
		t.Fatalf("overrides not applied: %d attractors, mode %s", len(e.Attractors()), e.Mode())
	}
	if e.Config().Convex {
		t.Fatal("notch preset should disable the convex shortcut")
	}
	if _, err := Engine("spiral", nil); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestNotchIsNonConvex(t *testing.T) {
	m := Notch(100, 100)
	if m.ContainsXY(50, 20) {
		t.Fatal("slot should be exterior")
	}
	if !m.ContainsXY(30, 20) || !m.ContainsXY(70, 20) || !m.ContainsXY(50, 85) {
		t.Fatal("arms and base should be interior")
	}
	if m.SegmentInside(geom.V(30, 20), geom.V(70, 20)) {
		t.Fatal("segment across the slot should leave the mask")
	}
}

func TestEllipse(t *testing.T) {
	m := Ellipse(200, 100)
	if !m.ContainsXY(100, 50) || m.ContainsXY(2, 2) || m.ContainsXY(198, 98) {
		t.Fatal("ellipse should contain its center and exclude the corners")
	}
}
