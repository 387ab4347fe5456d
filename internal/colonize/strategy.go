package colonize

import (
	"math"

	"venation/internal/geom"
)

// Strategy associates attractors with the tips they pull on. The two
// strategies share nothing beyond the outer loop, so each owns its rule.
type Strategy interface {
	Mode() Mode
	associate(e *Engine)
}

// StrategyFor returns the association strategy for mode.
func StrategyFor(mode Mode) Strategy {
	if mode == ModeClosed {
		return closedStrategy{}
	}
	return openStrategy{}
}

// closedStrategy applies the relative-neighbor rule: every unshadowed tip in
// range is influenced.
type closedStrategy struct{}

func (closedStrategy) Mode() Mode { return ModeClosed }

func (closedStrategy) associate(e *Engine) {
	absorb := e.cfg.Params.AbsorptionRadius
	for ai, a := range e.attractors {
		cands := e.candidates(a.Pos)
		if len(cands) == 0 {
			continue
		}
		neighbors := RelativeNeighbors(a.Pos, e.tips, cands)
		e.influence[ai] = neighbors
		for _, ti := range neighbors {
			if a.Pos.Dist(e.tips[ti].Pos) <= absorb {
				continue
			}
			e.attracting[ti] = append(e.attracting[ti], ai)
		}
	}
}

// RelativeNeighbors filters cands (indices into tips) down to those that are
// relative neighbors of a. A candidate p0 is rejected when some other
// candidate p1 is no farther from a than p0 while p0 lies farther from a
// than from p1.
func RelativeNeighbors(a geom.Vec, tips []Tip, cands []int) []int {
	var out []int
	for _, i0 := range cands {
		p0 := tips[i0].Pos
		aToP0 := a.Dist(p0)
		shadowed := false
		for _, i1 := range cands {
			if i1 == i0 {
				continue
			}
			p1 := tips[i1].Pos
			if a.Dist(p1) > aToP0 {
				continue
			}
			if aToP0 > p0.Dist(p1) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			out = append(out, i0)
		}
	}
	return out
}

// openStrategy pulls only the nearest tip outside the absorption zone. Any tip
// inside the absorption zone marks the attractor reached, and a reached
// attractor pulls on nothing.
type openStrategy struct{}

func (openStrategy) Mode() Mode { return ModeOpen }

func (openStrategy) associate(e *Engine) {
	attract := e.cfg.Params.AttractionRadius
	absorb := e.cfg.Params.AbsorptionRadius
	for ai := range e.attractors {
		a := &e.attractors[ai]
		closest := -1
		best := math.Inf(1)
		for _, ti := range e.candidates(a.Pos) {
			d := a.Pos.Dist(e.tips[ti].Pos)
			if d <= absorb {
				a.Reached = true
				break
			}
			if d >= attract {
				continue
			}
			if d < best {
				best, closest = d, ti
			}
		}
		if a.Reached || closest < 0 {
			continue
		}
		e.influence[ai] = []int{closest}
		e.attracting[closest] = append(e.attracting[closest], ai)
	}
}
