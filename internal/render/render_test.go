package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"venation/internal/colonize"
	"venation/internal/geom"
	"venation/internal/mask"
)

type fakeScene struct {
	m     *mask.Mask
	tips  []colonize.Tip
	attrs []colonize.Attractor
}

func (f fakeScene) Mask() *mask.Mask { return f.m }
func (f fakeScene) Tips() []colonize.Tip { return f.tips }
func (f fakeScene) Attractors() []colonize.Attractor { return f.attrs }

func chainScene() fakeScene {
	return fakeScene{
		m: mask.FromFunc(60, 60, func(x, y int) bool { return x >= 10 && x < 50 }),
		tips: []colonize.Tip{
			{Pos: geom.V(30, 50), Parent: colonize.NoParent, Thickness: 0.04},
			{Pos: geom.V(30, 30), Parent: 0, Thickness: 0.02},
			{Pos: geom.V(30, 10), Parent: 1},
		},
		attrs: []colonize.Attractor{{Pos: geom.V(45, 45)}},
	}
}

func sameRGB(c color.Color, want color.RGBA) bool {
	r, g, b, _ := c.RGBA()
	return uint8(r>>8) == want.R && uint8(g>>8) == want.G && uint8(b>>8) == want.B
}

func TestMaskImageColors(t *testing.T) {
	in := color.RGBA{R: 255, A: 255}
	out := color.RGBA{B: 255, A: 255}
	img := MaskImage(chainScene().m, in, out)
	if img.RGBAAt(20, 20) != in || img.RGBAAt(5, 20) != out {
		t.Fatalf("unexpected mask pixels %v %v", img.RGBAAt(20, 20), img.RGBAAt(5, 20))
	}
}

func TestSegmentsFollowParents(t *testing.T) {
	style := DefaultStyle()
	segs := Segments(chainScene().tips, style)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].From != geom.V(30, 50) || segs[0].To != geom.V(30, 30) {
		t.Fatalf("unexpected first segment %+v", segs[0])
	}
	if segs[0].Width <= segs[1].Width {
		t.Fatalf("thicker child should draw wider: %v vs %v", segs[0].Width, segs[1].Width)
	}
	if segs[1].Color != style.Branch[0] {
		t.Fatalf("thinnest segment should use the first branch color, got %v", segs[1].Color)
	}
}

func TestPaletteColor(t *testing.T) {
	palette := []color.RGBA{{R: 1}, {R: 2}, {R: 3}}
	if got := paletteColor(palette, 0, 1); got.R != 1 {
		t.Fatalf("zero thickness should use first entry, got %v", got)
	}
	if got := paletteColor(palette, 5, 1); got.R != 3 {
		t.Fatalf("thickness beyond the maximum should clamp, got %v", got)
	}
	if got := paletteColor(nil, 1, 1); got != (color.RGBA{}) {
		t.Fatalf("empty palette should be transparent, got %v", got)
	}
}

func TestRasterizeDrawsBranchesAndAttractors(t *testing.T) {
	style := DefaultStyle()
	img := Rasterize(chainScene(), style, 2)
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 120 {
		t.Fatalf("expected 120x120 image, got %v", b)
	}
	if !sameRGB(img.At(4, 4), style.Background) {
		t.Fatalf("exterior should be background, got %v", img.At(4, 4))
	}
	if !sameRGB(img.At(40, 100), style.Inside) {
		t.Fatalf("empty interior should show the mask color, got %v", img.At(40, 100))
	}
	if sameRGB(img.At(60, 80), style.Inside) {
		t.Fatal("branch segment should cover the interior along its path")
	}
	if !sameRGB(img.At(90, 90), style.Attractor) {
		t.Fatalf("attractor should be drawn, got %v", img.At(90, 90))
	}

	style.ShowAttractors = false
	if sameRGB(Rasterize(chainScene(), style, 2).At(90, 90), style.Attractor) {
		t.Fatal("hidden attractors should not be drawn")
	}
}

func TestNodesStyle(t *testing.T) {
	style := DefaultStyle()
	style.Nodes = true
	img := Rasterize(chainScene(), style, 2)
	if !sameRGB(img.At(60, 80), style.Inside) {
		t.Fatal("nodes style should not draw the segment between nodes")
	}
	if sameRGB(img.At(60, 20), style.Inside) {
		t.Fatal("node should be drawn at the tip position")
	}
}

func TestPNGOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, chainScene(), DefaultStyle(), 1); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 60 {
		t.Fatalf("unexpected width %d", img.Bounds().Dx())
	}

	path := filepath.Join(t.TempDir(), "scene.png")
	if err := WritePNG(path, chainScene(), DefaultStyle(), 1); err != nil {
		t.Fatal(err)
	}
	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "scene.png"), chainScene(), DefaultStyle(), 1); err == nil {
		t.Fatal("writing into a missing directory should fail")
	}
}
