package core

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	g.Set(4, 0, 9)
	g.Set(-1, 0, 9)
	if got := g.At(3, 2); got != 7 {
		t.Fatalf("expected 7 at (3,2), got %d", got)
	}
	if got := g.At(4, 0); got != 0 {
		t.Fatalf("out of bounds read should be 0, got %d", got)
	}
	if got := g.CountNonZero(); got != 1 {
		t.Fatalf("expected 1 non-zero cell, got %d", got)
	}
	g.Fill(1)
	if got := g.CountNonZero(); got != 12 {
		t.Fatalf("expected 12 filled cells, got %d", got)
	}
	g.Clear()
	if got := g.CountNonZero(); got != 0 {
		t.Fatalf("expected cleared grid, got %d cells", got)
	}
}

func TestByteGridZeroSize(t *testing.T) {
	g := NewByteGrid(0, -5)
	if g.W != 0 || g.H != 0 {
		t.Fatalf("expected 0x0 grid, got %dx%d", g.W, g.H)
	}
	if len(g.Cells()) != 0 {
		t.Fatal("zero-sized grid must not allocate cells")
	}
	if g.InBounds(0, 0) {
		t.Fatal("zero-sized grid has no cells in bounds")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(5), NewRNG(5)
	var xs, ys []float64
	for i := 0; i < 16; i++ {
		xs = append(xs, a.Range(-3, 3))
		ys = append(ys, b.Range(-3, 3))
	}
	if !slices.Equal(xs, ys) {
		t.Fatal("same seed should produce the same sequence")
	}
	for _, x := range xs {
		if x < -3 || x >= 3 {
			t.Fatalf("value %f outside [-3,3)", x)
		}
	}
	ux, uy := a.UnitVector()
	if l := math.Hypot(ux, uy); math.Abs(l-1) > 1e-12 {
		t.Fatalf("unit vector has length %f", l)
	}
}

func TestRegistryNames(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return nil })
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	defer delete(sims, "zz-test")

	if _, ok := Sims()["zz-test"]; !ok {
		t.Fatal("expected zz-test to be registered")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factories must be ignored")
	}
	names := SimNames()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(10)
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before the interval elapses")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once the interval elapses")
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected interval %v", fs.Interval())
	}
}

func TestControlClampAndLookup(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 10, HasMin: true, HasMax: true}
	if got := c.Clamp(0); got != 1 {
		t.Fatalf("expected clamp to 1, got %f", got)
	}
	if got := c.Clamp(11); got != 10 {
		t.Fatalf("expected clamp to 10, got %f", got)
	}
	snap := ParameterSnapshot{Groups: []ParameterGroup{{Params: []Parameter{{Key: "a", Value: "1"}}}}}
	if p, ok := snap.Lookup("a"); !ok || p.Value != "1" {
		t.Fatalf("lookup failed: %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("b"); ok {
		t.Fatal("unexpected lookup hit")
	}
}
