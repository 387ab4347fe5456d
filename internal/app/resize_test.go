package app

import (
	"path/filepath"
	"slices"
	"testing"

	"venation/internal/colonize"
	"venation/internal/core"
	"venation/internal/geom"
	"venation/internal/presets"
	"venation/internal/runfile"
)

func TestSceneSize(t *testing.T) {
	cases := []struct {
		w, h, hud, scale int
		want             core.Size
		ok               bool
	}{
		{w: 660, h: 400, hud: 260, scale: 2, want: core.Size{W: 200, H: 200}, ok: true},
		{w: 661, h: 401, hud: 260, scale: 2, want: core.Size{W: 200, H: 200}, ok: true},
		{w: 300, h: 100, hud: 0, scale: 0, want: core.Size{W: 300, H: 100}, ok: true},
		{w: 200, h: 100, hud: 260, scale: 1, ok: false},
	}
	for _, tc := range cases {
		got, ok := sceneSize(tc.w, tc.h, tc.hud, tc.scale)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("sceneSize(%d, %d, %d, %d) = %v, %v; want %v, %v", tc.w, tc.h, tc.hud, tc.scale, got, ok, tc.want, tc.ok)
		}
	}
}

func TestResizeRebuildsMaskAndRescales(t *testing.T) {
	f := runfile.Default()
	f.Preset = "notch"
	f.Engine.Width, f.Engine.Height = 200, 160
	f.Engine.Seeding = colonize.Seeding{Tips: 2, Attractors: 50}
	e, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	before := slices.Clone(e.Tips())
	attractors := slices.Clone(e.Attractors())

	f, err = Resize(e, f, core.Size{W: 100, H: 80})
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Size(); got != (core.Size{W: 100, H: 80}) {
		t.Fatalf("engine size %v after resize", got)
	}
	if f.Engine.Width != 100 || f.Engine.Height != 80 {
		t.Fatalf("run file should carry the new size: %dx%d", f.Engine.Width, f.Engine.Height)
	}
	want, err := presets.Mask("notch", 100, 80)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(e.Mask().Cells(), want.Cells()) {
		t.Fatal("mask should be rebuilt from the preset at the new size")
	}
	for i, tp := range e.Tips() {
		if wantPos := before[i].Pos.Mul(0.5, 0.5); tp.Pos != wantPos {
			t.Fatalf("tip %d at %v, want %v", i, tp.Pos, wantPos)
		}
	}
	for i, a := range e.Attractors() {
		if wantPos := attractors[i].Pos.Mul(0.5, 0.5); a.Pos != wantPos {
			t.Fatalf("attractor %d at %v, want %v", i, a.Pos, wantPos)
		}
	}
}

func TestResizeFailureLeavesEngine(t *testing.T) {
	f := runfile.Default()
	f.Engine.Width, f.Engine.Height = 60, 60
	f.Engine.Seeding = colonize.Seeding{}
	e, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	e.CreateTip(30, 30)

	f.MaskPath = filepath.Join(t.TempDir(), "missing.png")
	if _, err := Resize(e, f, core.Size{W: 120, H: 120}); err == nil {
		t.Fatal("expected error for a missing mask image")
	}
	if _, err := Resize(e, f, core.Size{}); err == nil {
		t.Fatal("expected error for an empty size")
	}
	if e.Size() != (core.Size{W: 60, H: 60}) || e.Tips()[0].Pos != geom.V(30, 30) {
		t.Fatalf("failed resize changed the engine: size %v tip %v", e.Size(), e.Tips()[0].Pos)
	}
}
