// Package mask implements the binary containment region growth is confined to.
//
// A Mask is a fixed-size grid of interior/exterior pixels. It is immutable
// once built; a resized region is a new Mask.
package mask

import (
	"venation/internal/core"
	"venation/internal/geom"
)

// SegmentSamples is the number of interior points tested along a segment by
// SegmentInside. Concave gaps narrower than the sampling interval can be
// crossed.
const SegmentSamples = 10

// Mask is a binary inside/outside grid over integer pixel coordinates.
type Mask struct {
	grid     *core.ByteGrid
	interior int
}

// Full returns a w×h mask that is inside everywhere.
func Full(w, h int) *Mask {
	g := core.NewByteGrid(w, h)
	g.Fill(1)
	return &Mask{grid: g, interior: len(g.Cells())}
}

// Empty returns a w×h mask that is outside everywhere.
func Empty(w, h int) *Mask {
	return &Mask{grid: core.NewByteGrid(w, h)}
}

// FromFunc builds a w×h mask by evaluating inside for every pixel.
func FromFunc(w, h int, inside func(x, y int) bool) *Mask {
	g := core.NewByteGrid(w, h)
	n := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if inside(x, y) {
				g.Set(x, y, 1)
				n++
			}
		}
	}
	return &Mask{grid: g, interior: n}
}

// FromChannel builds a mask from one byte per pixel in row-major order. A
// pixel whose sentinel value is 0 is exterior; anything else is interior.
// Missing trailing values are treated as exterior.
func FromChannel(w, h int, channel []uint8) *Mask {
	return FromFunc(w, h, func(x, y int) bool {
		i := y*w + x
		return i < len(channel) && channel[i] != 0
	})
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	if m == nil {
		return 0
	}
	return m.grid.W
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	if m == nil {
		return 0
	}
	return m.grid.H
}

// Size returns the mask dimensions.
func (m *Mask) Size() core.Size { return core.Size{W: m.Width(), H: m.Height()} }

// Degenerate reports whether the mask has a zero dimension.
func (m *Mask) Degenerate() bool { return m.Width() == 0 || m.Height() == 0 }

// Interior returns the number of inside pixels.
func (m *Mask) Interior() int {
	if m == nil {
		return 0
	}
	return m.interior
}

// Cells exposes the raw grid: 1 for inside, 0 for outside. Callers must not
// modify the returned slice.
func (m *Mask) Cells() []uint8 {
	if m == nil {
		return nil
	}
	return m.grid.Cells()
}

// ContainsXY floors (x, y) to a pixel and reports whether it is inside.
// Coordinates outside the grid are outside.
func (m *Mask) ContainsXY(x, y float64) bool {
	return m.Contains(geom.V(x, y))
}

// Contains reports whether p falls on an inside pixel.
func (m *Mask) Contains(p geom.Vec) bool {
	if m == nil {
		return false
	}
	x, y := p.Floor()
	return m.grid.At(x, y) != 0
}

// SegmentInside samples the open segment between a and b at SegmentSamples
// evenly spaced fractions and reports whether every sample is inside. The
// endpoints themselves are not tested.
func (m *Mask) SegmentInside(a, b geom.Vec) bool {
	for k := 1; k <= SegmentSamples; k++ {
		t := float64(k) / float64(SegmentSamples+1)
		if !m.Contains(a.Lerp(b, t)) {
			return false
		}
	}
	return true
}

// ScaleFactors returns the per-axis ratios that map positions laid out over
// from onto to. A zero dimension on from yields a factor of 1 for that axis.
func ScaleFactors(from, to *Mask) (float64, float64) {
	sx, sy := 1.0, 1.0
	if w := from.Width(); w > 0 {
		sx = float64(to.Width()) / float64(w)
	}
	if h := from.Height(); h > 0 {
		sy = float64(to.Height()) / float64(h)
	}
	return sx, sy
}
