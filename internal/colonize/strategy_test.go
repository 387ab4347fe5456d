package colonize

import (
	"slices"
	"testing"

	"venation/internal/core"
	"venation/internal/geom"
	"venation/internal/mask"
)

func associateOnly(e *Engine) {
	e.reindex()
	e.resetAssociations()
	e.strategy.associate(e)
}

func TestEquidistantTipsAreBothNeighbors(t *testing.T) {
	e := testScene(100, 100, nil, ModeClosed, WithParams(Params{
		AttractionRadius: 64,
		AbsorptionRadius: 2,
		StepLength:       2,
	}))
	e.CreateTip(40, 50)
	e.CreateTip(60, 50)
	e.CreateAttractor(50, 55)
	associateOnly(e)

	if got := e.influence[0]; !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("expected both equidistant tips as relative neighbors, got %v", got)
	}
	for ti := range e.tips {
		if !slices.Equal(e.attracting[ti], []int{0}) {
			t.Fatalf("tip %d should be attracted by attractor 0, got %v", ti, e.attracting[ti])
		}
	}
}

func TestRelativeNeighborsShadowing(t *testing.T) {
	tips := []Tip{
		{Pos: geom.V(0, 10)}, // nearest
		{Pos: geom.V(0, 20)}, // directly behind the nearest
		{Pos: geom.V(30, 0)}, // off to the side
	}
	got := RelativeNeighbors(geom.V(0, 0), tips, []int{0, 1, 2})
	if !slices.Equal(got, []int{0, 2}) {
		t.Fatalf("expected tips 0 and 2, got %v", got)
	}
}

func TestRelativeNeighborsScaleInvariant(t *testing.T) {
	rng := core.NewRNG(5)
	for trial := 0; trial < 50; trial++ {
		a := geom.V(rng.Range(0, 100), rng.Range(0, 100))
		tips := make([]Tip, 12)
		cands := make([]int, len(tips))
		for i := range tips {
			tips[i] = Tip{Pos: geom.V(rng.Range(0, 100), rng.Range(0, 100))}
			cands[i] = i
		}
		want := RelativeNeighbors(a, tips, cands)

		for _, k := range []float64{2, 0.5} {
			scaled := make([]Tip, len(tips))
			for i, tp := range tips {
				scaled[i] = Tip{Pos: tp.Pos.Scale(k)}
			}
			if got := RelativeNeighbors(a.Scale(k), scaled, cands); !slices.Equal(got, want) {
				t.Fatalf("trial %d scale %g: neighbors %v, want %v", trial, k, got, want)
			}
		}
	}
}

func TestClosedModeScaleInvariantEngine(t *testing.T) {
	e := testScene(100, 100, nil, ModeClosed, WithParams(Params{
		AttractionRadius: 40,
		AbsorptionRadius: 4,
		StepLength:       2,
	}))
	e.RandomizeInteriorTips(15)
	e.RandomizeInteriorAttractors(40)
	associateOnly(e)
	wantInfluence := cloneSets(e.influence)
	wantAttracting := cloneSets(e.attracting)

	e.Update(mask.Full(200, 200))
	e.SetFloatParameter("attraction_radius", 80)
	e.SetFloatParameter("absorption_radius", 8)
	associateOnly(e)

	for ai := range wantInfluence {
		if !slices.Equal(e.influence[ai], wantInfluence[ai]) {
			t.Fatalf("attractor %d influence %v after scaling, want %v", ai, e.influence[ai], wantInfluence[ai])
		}
	}
	for ti := range wantAttracting {
		if !slices.Equal(e.attracting[ti], wantAttracting[ti]) {
			t.Fatalf("tip %d attracted by %v after scaling, want %v", ti, e.attracting[ti], wantAttracting[ti])
		}
	}
}

func TestOpenModeAtMostOneTipPerAttractor(t *testing.T) {
	e := testScene(150, 150, nil, ModeOpen, WithParams(Params{
		AttractionRadius: 60,
		AbsorptionRadius: 5,
		StepLength:       2,
	}))
	e.RandomizeInteriorTips(25)
	e.RandomizeInteriorAttractors(200)

	for step := 0; step < 20; step++ {
		associateOnly(e)
		pulls := make([]int, len(e.attractors))
		for _, list := range e.attracting {
			for _, ai := range list {
				pulls[ai]++
			}
		}
		for ai, n := range pulls {
			if n > 1 {
				t.Fatalf("step %d: attractor %d pulls %d tips", step, ai, n)
			}
			if len(e.influence[ai]) > 1 {
				t.Fatalf("step %d: attractor %d influence %v", step, ai, e.influence[ai])
			}
		}
		if !e.Step() {
			break
		}
	}
}

func TestOpenModeMarksReached(t *testing.T) {
	e := testScene(100, 100, nil, ModeOpen)
	e.CreateTip(50, 50)
	e.CreateTip(50, 90)
	e.CreateAttractor(50, 55)
	associateOnly(e)

	if !e.attractors[0].Reached {
		t.Fatal("attractor with a tip inside the absorption zone should be reached")
	}
	if len(e.influence[0]) != 0 {
		t.Fatalf("reached attractor should influence no tip, got %v", e.influence[0])
	}
	for ti := range e.tips {
		if len(e.attracting[ti]) != 0 {
			t.Fatalf("tip %d pulled by a reached attractor: %v", ti, e.attracting[ti])
		}
	}
	if e.Step() {
		t.Fatal("a reached attractor must not grow any tip")
	}
	if len(e.attractors) != 0 {
		t.Fatalf("reached attractor should be absorbed, %d left", len(e.attractors))
	}
}

func TestOpenModeIgnoresTipsBeyondAttraction(t *testing.T) {
	e := testScene(300, 300, nil, ModeOpen, WithParams(Params{
		AttractionRadius: 20,
		AbsorptionRadius: 2,
		StepLength:       2,
	}))
	e.CreateTip(10, 10)
	e.CreateAttractor(10, 30)
	associateOnly(e)
	if len(e.influence[0]) != 0 {
		t.Fatalf("tip exactly at the attraction radius must not be pulled, got %v", e.influence[0])
	}
}

func TestStrategyFor(t *testing.T) {
	if StrategyFor(ModeOpen).Mode() != ModeOpen {
		t.Fatal("expected open strategy")
	}
	if StrategyFor(ModeClosed).Mode() != ModeClosed {
		t.Fatal("expected closed strategy")
	}
	e := testScene(10, 10, nil, ModeOpen)
	e.SetMode(ModeClosed)
	if e.Mode() != ModeClosed || e.Name() != "colonize-closed" {
		t.Fatalf("mode switch not applied: %s %s", e.Mode(), e.Name())
	}
}

func cloneSets(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i, s := range in {
		out[i] = slices.Clone(s)
	}
	return out
}
