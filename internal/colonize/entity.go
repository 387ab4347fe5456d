package colonize

import "venation/internal/geom"

// NoParent marks a seed tip.
const NoParent = -1

// Growth constants for thickness propagation.
const (
	ThicknessMargin    = 0.05
	ThicknessIncrement = 0.02
)

// Tip is a growth node. Tips are stored in an append-only arena and refer to
// their parent by index.
type Tip struct {
	Pos       geom.Vec
	Parent    int
	Thickness float64
}

// IsSeed reports whether the tip was created without a parent.
func (t Tip) IsSeed() bool { return t.Parent == NoParent }

// Attractor is a growth-inducing signal source.
type Attractor struct {
	Pos geom.Vec
	// Reached is set once any tip enters the absorption zone in open mode.
	Reached bool
}
