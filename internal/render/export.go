package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
)

// Rasterize draws s at the given pixel scale and returns the finished image.
func Rasterize(s Scene, style Style, scale float64) image.Image {
	return draw(s, style, scale).Image()
}

// EncodePNG writes the rasterized scene to w.
func EncodePNG(w io.Writer, s Scene, style Style, scale float64) error {
	if err := draw(s, style, scale).EncodePNG(w); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// WritePNG writes the rasterized scene to path.
func WritePNG(path string, s Scene, style Style, scale float64) error {
	if err := draw(s, style, scale).SavePNG(path); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return nil
}

func draw(s Scene, style Style, scale float64) *gg.Context {
	if scale <= 0 {
		scale = 1
	}
	m := s.Mask()
	w := max(1, int(float64(m.Width())*scale))
	h := max(1, int(float64(m.Height())*scale))
	dc := gg.NewContext(w, h)
	dc.SetColor(style.Background)
	dc.Clear()

	dc.Scale(scale, scale)
	if !m.Degenerate() {
		dc.DrawImage(MaskImage(m, style.Inside, style.Background), 0, 0)
	}

	tips := s.Tips()
	dc.SetLineCapRound()
	if style.Nodes {
		maxT := MaxThickness(tips)
		for _, t := range tips {
			dc.SetColor(style.NodeColor(t, maxT))
			dc.DrawCircle(t.Pos.X, t.Pos.Y, style.NodeRadius+t.Thickness*style.WidthScale/2)
			dc.Fill()
		}
	} else {
		for _, seg := range Segments(tips, style) {
			dc.SetColor(seg.Color)
			dc.SetLineWidth(seg.Width * scale)
			dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
			dc.Stroke()
		}
	}

	if style.ShowAttractors {
		dc.SetColor(style.Attractor)
		for _, a := range s.Attractors() {
			dc.DrawCircle(a.Pos.X, a.Pos.Y, style.NodeRadius)
			dc.Fill()
		}
	}
	return dc
}
