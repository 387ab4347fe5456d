// Package render draws growth scenes: the mask, the branch segments or nodes
// and the remaining attractors.
package render

import (
	"image/color"

	"venation/internal/colonize"
	"venation/internal/geom"
	"venation/internal/mask"
)

// Scene is the read-only view of an engine needed for drawing.
type Scene interface {
	Mask() *mask.Mask
	Tips() []colonize.Tip
	Attractors() []colonize.Attractor
}

// Style controls colors and widths.
type Style struct {
	Background color.RGBA
	Inside     color.RGBA
	// Branch colors run from the thinnest to the thickest segment.
	Branch    []color.RGBA
	Attractor color.RGBA

	// Nodes draws tips as dots instead of parent-to-child segments.
	Nodes          bool
	ShowAttractors bool

	BaseWidth  float64
	WidthScale float64
	NodeRadius float64
}

// DefaultStyle returns the viewer's look: dark ink branches on a pale mask.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 18, G: 18, B: 22, A: 255},
		Inside:     color.RGBA{R: 236, G: 232, B: 220, A: 255},
		Branch: []color.RGBA{
			{R: 96, G: 120, B: 80, A: 255},
			{R: 70, G: 92, B: 58, A: 255},
			{R: 52, G: 64, B: 40, A: 255},
			{R: 40, G: 34, B: 26, A: 255},
		},
		Attractor:      color.RGBA{R: 200, G: 70, B: 60, A: 255},
		ShowAttractors: true,
		BaseWidth:      1,
		WidthScale:     6,
		NodeRadius:     1.5,
	}
}

// Segment is one parent-to-child edge of the growth tree.
type Segment struct {
	From, To geom.Vec
	Width    float64
	Color    color.RGBA
}

// Segments lists the edges of the tree in arena order. Widths grow with the
// child's thickness.
func Segments(tips []colonize.Tip, style Style) []Segment {
	maxT := MaxThickness(tips)
	out := make([]Segment, 0, len(tips))
	for _, t := range tips {
		if t.IsSeed() {
			continue
		}
		out = append(out, Segment{
			From:  tips[t.Parent].Pos,
			To:    t.Pos,
			Width: style.LineWidth(t.Thickness),
			Color: paletteColor(style.Branch, t.Thickness, maxT),
		})
	}
	return out
}

// LineWidth maps a tip thickness to a stroke width in scene units.
func (s Style) LineWidth(thickness float64) float64 {
	return s.BaseWidth + thickness*s.WidthScale
}

// NodeColor returns the color used for a tip drawn as a dot.
func (s Style) NodeColor(t colonize.Tip, maxT float64) color.RGBA {
	return paletteColor(s.Branch, t.Thickness, maxT)
}

// MaxThickness returns the largest tip thickness.
func MaxThickness(tips []colonize.Tip) float64 {
	m := 0.0
	for _, t := range tips {
		if t.Thickness > m {
			m = t.Thickness
		}
	}
	return m
}
