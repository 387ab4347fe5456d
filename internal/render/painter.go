//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"venation/internal/mask"
)

// ScenePainter draws a scene onto an ebiten image. The mask is uploaded once
// and re-uploaded only when the engine's mask changes.
type ScenePainter struct {
	mask *mask.Mask
	img  *ebiten.Image
	buf  []byte
}

// NewScenePainter allocates an empty painter.
func NewScenePainter() *ScenePainter { return &ScenePainter{} }

// Draw paints the mask, the branches or nodes and the attractors of s.
func (sp *ScenePainter) Draw(dst *ebiten.Image, s Scene, style Style, scale int) {
	if scale <= 0 {
		scale = 1
	}
	dst.Fill(style.Background)
	sp.blitMask(dst, s.Mask(), style, scale)

	f := float32(scale)
	tips := s.Tips()
	if style.Nodes {
		maxT := MaxThickness(tips)
		for _, t := range tips {
			r := float32(style.NodeRadius+t.Thickness*style.WidthScale/2) * f
			vector.DrawFilledCircle(dst, float32(t.Pos.X)*f, float32(t.Pos.Y)*f, r, style.NodeColor(t, maxT), true)
		}
	} else {
		for _, seg := range Segments(tips, style) {
			vector.StrokeLine(dst,
				float32(seg.From.X)*f, float32(seg.From.Y)*f,
				float32(seg.To.X)*f, float32(seg.To.Y)*f,
				float32(seg.Width)*f, seg.Color, true)
		}
	}

	if style.ShowAttractors {
		r := float32(style.NodeRadius) * f
		for _, a := range s.Attractors() {
			vector.DrawFilledCircle(dst, float32(a.Pos.X)*f, float32(a.Pos.Y)*f, r, style.Attractor, true)
		}
	}
}

func (sp *ScenePainter) blitMask(dst *ebiten.Image, m *mask.Mask, style Style, scale int) {
	if m == nil || m.Degenerate() {
		return
	}
	if m != sp.mask {
		w, h := m.Width(), m.Height()
		if sp.img == nil || sp.img.Bounds().Dx() != w || sp.img.Bounds().Dy() != h {
			sp.img = ebiten.NewImage(w, h)
			sp.buf = make([]byte, 4*w*h)
		}
		fillBinaryRGBA(sp.buf, m.Cells(), style.Inside, style.Background)
		sp.img.WritePixels(sp.buf)
		sp.mask = m
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}
