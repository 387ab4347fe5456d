package colonize

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"venation/internal/mask"
)

// Variant is one parameter combination evaluated by Sweep.
type Variant struct {
	Name   string
	Mode   Mode
	Params Params
}

// RunSummary describes the outcome of running one engine to completion.
type RunSummary struct {
	Variant      Variant
	Steps        int
	Tips         int
	Branches     int
	Attractors   int
	MaxThickness float64
	State        State
}

// Summarize reports the current shape of the engine's growth.
func Summarize(e *Engine) RunSummary {
	s := RunSummary{
		Steps:      e.Steps(),
		Tips:       len(e.tips),
		Attractors: len(e.attractors),
	}
	children := make([]int, len(e.tips))
	for _, t := range e.tips {
		if t.Thickness > s.MaxThickness {
			s.MaxThickness = t.Thickness
		}
		if !t.IsSeed() {
			children[t.Parent]++
		}
	}
	for _, c := range children {
		if c > 1 {
			s.Branches++
		}
	}
	return s
}

// VariantGrid builds the cross product of attraction and absorption radii over
// both modes, keeping the base step length.
func VariantGrid(base Params, attraction, absorption []float64) []Variant {
	var out []Variant
	for _, mode := range []Mode{ModeOpen, ModeClosed} {
		for _, ar := range attraction {
			for _, br := range absorption {
				if br > ar {
					continue
				}
				p := base
				p.AttractionRadius = ar
				p.AbsorptionRadius = br
				out = append(out, Variant{
					Name:   fmt.Sprintf("%s/attract=%g/absorb=%g", mode, ar, br),
					Mode:   mode,
					Params: p,
				})
			}
		}
	}
	return out
}

// Sweep runs one independent engine per variant over the shared read-only
// mask, at most workers at a time. Every engine is reset with base's seed and
// seeding so variants differ only in their parameters. Results are returned
// in variant order.
func Sweep(ctx context.Context, base Config, m *mask.Mask, variants []Variant, maxSteps, workers int) ([]RunSummary, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]RunSummary, len(variants))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			cfg := base
			cfg.Mode = v.Mode
			cfg.Params = v.Params
			e := NewWithConfig(cfg, m)
			e.Reset(cfg.Seed)
			res, err := NewDriver(e, maxSteps).Run(ctx, nil)
			if err != nil {
				return fmt.Errorf("variant %s: %w", v.Name, err)
			}
			s := Summarize(e)
			s.Variant = v
			s.State = res.State
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
