// Package colonize implements the space-colonization growth engine.
//
// An Engine owns an append-only arena of tips, a set of attractors and the
// mask both are confined to. Each Step rebuilds the spatial indexes,
// associates attractors with tips under the configured Mode, grows one new tip
// per attracted tip, thickens the ancestors of every new tip and removes
// attractors that have been absorbed.
package colonize

import (
	"venation/internal/core"
	"venation/internal/geom"
	"venation/internal/mask"
	"venation/internal/spatial"
)

// Engine runs the colonization process over a mask.
type Engine struct {
	cfg      Config
	mask     *mask.Mask
	strategy Strategy
	rng      *core.RNG

	tips       []Tip
	attractors []Attractor

	tipIndex       *spatial.Index
	attractorIndex *spatial.Index
	stale          bool

	// Per-step association state, indexed like tips and attractors.
	attracting [][]int
	influence  [][]int

	steps int
	log   *RunLog
}

// New returns an engine over a width×height area. A nil mask means the whole
// area is inside. When a mask is given its dimensions take precedence.
func New(width, height int, m *mask.Mask, mode Mode, opts ...Option) *Engine {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Mode = mode
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg, m)
}

// NewWithConfig returns an engine configured from cfg.
func NewWithConfig(cfg Config, m *mask.Mask) *Engine {
	if m == nil {
		m = mask.Full(cfg.Width, cfg.Height)
	}
	cfg.Width = m.Width()
	cfg.Height = m.Height()
	return &Engine{
		cfg:      cfg,
		mask:     m,
		strategy: StrategyFor(cfg.Mode),
		rng:      core.NewRNG(cfg.Seed),
		stale:    true,
	}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "colonize-" + e.cfg.Mode.String() }

// Size reports the dimensions of the growth area.
func (e *Engine) Size() core.Size { return e.mask.Size() }

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// Mask returns the active containment mask.
func (e *Engine) Mask() *mask.Mask { return e.mask }

// Mode returns the active association mode.
func (e *Engine) Mode() Mode { return e.strategy.Mode() }

// SetMode switches the association strategy for subsequent steps.
func (e *Engine) SetMode(mode Mode) {
	e.cfg.Mode = mode
	e.strategy = StrategyFor(mode)
}

// SetLog attaches a run log that records per-step events. Nil disables
// logging.
func (e *Engine) SetLog(l *RunLog) { e.log = l }

// Tips returns the tip arena. Callers must not modify it.
func (e *Engine) Tips() []Tip { return e.tips }

// Attractors returns the live attractors. Callers must not modify them.
func (e *Engine) Attractors() []Attractor { return e.attractors }

// Steps returns the number of steps taken since the last Reset.
func (e *Engine) Steps() int { return e.steps }

// Reset clears all entities, reseeds the random source and scatters the
// configured number of tips and attractors. A zero seed reuses the
// configured one.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	e.rng = core.NewRNG(effective)
	e.ClearTips()
	e.ClearAttractors()
	e.steps = 0
	e.RandomizeInteriorTips(e.cfg.Seeding.Tips)
	e.RandomizeInteriorAttractors(e.cfg.Seeding.Attractors)
	if e.log != nil {
		e.log.Add(0, CategoryRun, "reset", len(e.tips), float64(len(e.attractors)))
	}
}

// CreateTip adds a seed tip at (x, y). It fails when the point is outside the
// mask or another tip already occupies it.
func (e *Engine) CreateTip(x, y float64) bool {
	p := geom.V(x, y)
	if !e.mask.Contains(p) {
		return false
	}
	e.refreshIndexes()
	if e.tipIndex.Occupied(p) {
		return false
	}
	e.tips = append(e.tips, Tip{Pos: p, Parent: NoParent})
	e.stale = true
	return true
}

// CreateAttractor adds an attractor at (x, y). It fails when the point is
// outside the mask or another attractor already occupies it.
func (e *Engine) CreateAttractor(x, y float64) bool {
	p := geom.V(x, y)
	if !e.mask.Contains(p) {
		return false
	}
	e.refreshIndexes()
	if e.attractorIndex.Occupied(p) {
		return false
	}
	e.attractors = append(e.attractors, Attractor{Pos: p})
	e.stale = true
	return true
}

// RandomizeInteriorTips appends n seed tips sampled uniformly from the mask
// interior and returns how many were created.
func (e *Engine) RandomizeInteriorTips(n int) int {
	created := 0
	for ; created < n; created++ {
		p, ok := e.sampleInterior()
		if !ok {
			break
		}
		e.tips = append(e.tips, Tip{Pos: p, Parent: NoParent})
	}
	if created > 0 {
		e.stale = true
	}
	return created
}

// RandomizeInteriorAttractors appends n attractors sampled uniformly from the
// mask interior and returns how many were created.
func (e *Engine) RandomizeInteriorAttractors(n int) int {
	created := 0
	for ; created < n; created++ {
		p, ok := e.sampleInterior()
		if !ok {
			break
		}
		e.attractors = append(e.attractors, Attractor{Pos: p})
	}
	if created > 0 {
		e.stale = true
	}
	return created
}

// sampleInterior rejection-samples a point inside the mask. It fails only
// when the mask has no interior.
func (e *Engine) sampleInterior() (geom.Vec, bool) {
	if e.mask.Interior() == 0 {
		return geom.Vec{}, false
	}
	w, h := float64(e.mask.Width()), float64(e.mask.Height())
	for {
		p := geom.V(e.rng.Range(0, w), e.rng.Range(0, h))
		if e.mask.Contains(p) {
			return p, true
		}
	}
}

// CopyAttractors replaces the attractors with fresh copies of the positions in
// list. Reached flags and associations are not carried over.
func (e *Engine) CopyAttractors(list []Attractor) {
	e.attractors = make([]Attractor, len(list))
	for i, a := range list {
		e.attractors[i] = Attractor{Pos: a.Pos}
	}
	e.stale = true
}

// ClearTips removes every tip.
func (e *Engine) ClearTips() {
	e.tips = nil
	e.stale = true
}

// ClearAttractors removes every attractor.
func (e *Engine) ClearAttractors() {
	e.attractors = nil
	e.stale = true
}

// Update replaces the mask and rescales every tip and attractor by the ratio
// of the new dimensions to the old ones. It must not be called while a step
// is in progress.
func (e *Engine) Update(m *mask.Mask) {
	if m == nil {
		return
	}
	sx, sy := mask.ScaleFactors(e.mask, m)
	for i := range e.tips {
		e.tips[i].Pos = e.tips[i].Pos.Mul(sx, sy)
	}
	for i := range e.attractors {
		e.attractors[i].Pos = e.attractors[i].Pos.Mul(sx, sy)
	}
	e.mask = m
	e.cfg.Width = m.Width()
	e.cfg.Height = m.Height()
	e.stale = true
}

// Step runs one colonization iteration and reports whether any tip grew.
func (e *Engine) Step() bool {
	e.reindex()
	e.resetAssociations()
	e.strategy.associate(e)
	before := len(e.tips)
	e.grow()
	removed := e.absorb()
	e.steps++
	grown := len(e.tips) - before
	if e.log != nil {
		if grown > 0 {
			e.log.Add(e.steps, CategoryGrow, "tips", grown, float64(len(e.tips)))
		}
		if removed > 0 {
			e.log.Add(e.steps, CategoryAbsorb, "attractors", removed, float64(len(e.attractors)))
		}
		if grown == 0 {
			e.log.Add(e.steps, CategoryRun, "quiescent", len(e.tips), float64(len(e.attractors)))
		}
	}
	return grown > 0
}

func (e *Engine) reindex() {
	tipPos := make([]geom.Vec, len(e.tips))
	for i, t := range e.tips {
		tipPos[i] = t.Pos
	}
	attrPos := make([]geom.Vec, len(e.attractors))
	for i, a := range e.attractors {
		attrPos[i] = a.Pos
	}
	e.tipIndex = spatial.Build(tipPos)
	e.attractorIndex = spatial.Build(attrPos)
	e.stale = false
}

func (e *Engine) refreshIndexes() {
	if e.stale || e.tipIndex == nil || e.attractorIndex == nil {
		e.reindex()
	}
}

func (e *Engine) resetAssociations() {
	e.attracting = make([][]int, len(e.tips))
	e.influence = make([][]int, len(e.attractors))
}

// candidates returns the tips within attraction radius of p that p can see.
func (e *Engine) candidates(p geom.Vec) []int {
	idx := e.tipIndex.Within(p, e.cfg.Params.AttractionRadius)
	if e.cfg.Convex {
		return idx
	}
	visible := idx[:0]
	for _, ti := range idx {
		if e.mask.SegmentInside(p, e.tips[ti].Pos) {
			visible = append(visible, ti)
		}
	}
	return visible
}

func (e *Engine) grow() {
	n := len(e.tips)
	for ti := 0; ti < n; ti++ {
		if len(e.attracting[ti]) == 0 {
			continue
		}
		dir := e.direction(ti)
		e.attracting[ti] = nil
		if dir.IsZero() {
			continue
		}
		from := e.tips[ti].Pos
		next := from.Add(dir.Scale(e.cfg.Params.StepLength))
		if !e.mask.Contains(next) {
			continue
		}
		if !e.cfg.Convex && !e.mask.SegmentInside(from, next) {
			continue
		}
		e.tips = append(e.tips, Tip{Pos: next, Parent: ti})
		e.thicken(len(e.tips) - 1)
	}
}

// direction returns the normalized mean pull on tip ti, or the zero vector
// when opposing pulls cancel out.
func (e *Engine) direction(ti int) geom.Vec {
	from := e.tips[ti].Pos
	var sum geom.Vec
	for _, ai := range e.attracting[ti] {
		sum = sum.Add(e.attractors[ai].Pos.Sub(from).Normalize())
	}
	if e.cfg.DisturbDirection {
		nx, ny := e.rng.UnitVector()
		sum = sum.Add(geom.V(nx, ny))
	}
	return sum.Normalize()
}

// thicken walks from child to its root, bumping every ancestor that is not
// already clearly thicker than the node below it.
func (e *Engine) thicken(child int) {
	for c := child; e.tips[c].Parent != NoParent; c = e.tips[c].Parent {
		p := e.tips[c].Parent
		if e.tips[p].Thickness < e.tips[c].Thickness+ThicknessMargin {
			e.tips[p].Thickness += ThicknessIncrement
		}
	}
}

// absorb drops reached attractors and those whose whole influence set sits
// inside the absorption zone. It returns the number removed.
func (e *Engine) absorb() int {
	radius := e.cfg.Params.AbsorptionRadius
	kept := e.attractors[:0]
	removed := 0
	for ai, a := range e.attractors {
		if a.Reached || e.fullyAbsorbed(a.Pos, e.influence[ai], radius) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	e.attractors = kept
	if removed > 0 {
		e.stale = true
	}
	return removed
}

func (e *Engine) fullyAbsorbed(a geom.Vec, infl []int, radius float64) bool {
	if len(infl) == 0 {
		return false
	}
	for _, ti := range infl {
		if a.Dist(e.tips[ti].Pos) > radius {
			return false
		}
	}
	return true
}
