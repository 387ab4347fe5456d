// Package maskimg builds masks from raster images and rendered text.
package maskimg

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoding for Load
	"os"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP decoding for Load
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"venation/internal/mask"
)

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("maskimg: empty image")
	// ErrEmptyText is returned when the text has no drawable glyphs.
	ErrEmptyText = errors.New("maskimg: no drawable glyphs")
)

// threshold is the minimum coverage (0-255) for an interior pixel after
// resampling.
const threshold = 128

// letterMargin is the fraction of each letter slot left blank on every side.
const letterMargin = 0.08

// Load decodes a PNG or BMP file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mask image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode mask image %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyImage)
	}
	return img, nil
}

// FromImage resamples img to w×h and converts it into a mask. Images with
// transparency use the alpha channel as the sentinel: transparent pixels are
// exterior. Fully opaque images use darkness instead, so a black shape on a
// white background becomes the interior.
func FromImage(img image.Image, w, h int) (*mask.Mask, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if w <= 0 || h <= 0 {
		return mask.Empty(max(w, 0), max(h, 0)), nil
	}
	dst := image.Rect(0, 0, w, h)
	if !isOpaque(img) {
		a := image.NewAlpha(dst)
		draw.ApproxBiLinear.Scale(a, dst, img, img.Bounds(), draw.Over, nil)
		return fromCoverage(w, h, a.Pix, false), nil
	}
	g := image.NewGray(dst)
	draw.ApproxBiLinear.Scale(g, dst, img, img.Bounds(), draw.Src, nil)
	return fromCoverage(w, h, g.Pix, true), nil
}

// LoadMask reads path and converts it into a w×h mask.
func LoadMask(path string, w, h int) (*mask.Mask, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img, w, h)
}

// FromText renders s with the built-in bitmap face and stretches every
// character over an equal-width slot spanning the full height, as the
// letter masks are laid out. Spaces leave their slot empty. Only the first
// line of s is used.
func FromText(s string, w, h int) (*mask.Mask, error) {
	line, _, _ := strings.Cut(s, "\n")
	runes := []rune(strings.TrimRight(line, " \t\r"))
	if len(runes) == 0 {
		return nil, ErrEmptyText
	}
	face := basicfont.Face7x13
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	drawn := 0
	for i, r := range runes {
		glyph := renderGlyph(face, r)
		if glyph == nil {
			continue
		}
		dst0 := i * w / len(runes)
		dst1 := (i + 1) * w / len(runes)
		slot := shrink(image.Rect(dst0, 0, dst1, h), letterMargin)
		if slot.Empty() {
			continue
		}
		draw.NearestNeighbor.Scale(dst, slot, glyph, glyph.Bounds(), draw.Over, nil)
		drawn++
	}
	if drawn == 0 {
		return nil, ErrEmptyText
	}
	return fromCoverage(w, h, dst.Pix, false), nil
}

// renderGlyph draws r cropped to its ink bounds, or returns nil when r has no
// visible pixels.
func renderGlyph(face font.Face, r rune) *image.Alpha {
	dot := fixed.P(0, face.Metrics().Ascent.Ceil())
	dr, src, sp, _, ok := face.Glyph(dot, r)
	if !ok || dr.Empty() {
		return nil
	}
	full := image.NewAlpha(dr)
	draw.Draw(full, dr, src, sp, draw.Src)
	ink := inkBounds(full)
	if ink.Empty() {
		return nil
	}
	return full.SubImage(ink).(*image.Alpha)
}

func inkBounds(a *image.Alpha) image.Rectangle {
	b := a.Bounds()
	ink := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a.AlphaAt(x, y).A == 0 {
				continue
			}
			ink = ink.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return ink
}

func shrink(r image.Rectangle, frac float64) image.Rectangle {
	dx := int(float64(r.Dx()) * frac)
	dy := int(float64(r.Dy()) * frac)
	return image.Rect(r.Min.X+dx, r.Min.Y+dy, r.Max.X-dx, r.Max.Y-dy)
}

// fromCoverage thresholds one byte per pixel. With invert set, low values
// (dark pixels) are interior.
func fromCoverage(w, h int, pix []uint8, invert bool) *mask.Mask {
	channel := make([]uint8, len(pix))
	for i, v := range pix {
		inside := v >= threshold
		if invert {
			inside = v < threshold
		}
		if inside {
			channel[i] = 1
		}
	}
	return mask.FromChannel(w, h, channel)
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
