package render

import (
	"image"
	"image/color"

	"venation/internal/mask"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// MaskImage paints the interior and exterior of m into a new RGBA image.
func MaskImage(m *mask.Mask, inside, outside color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	fillBinaryRGBA(img.Pix, m.Cells(), inside, outside)
	return img
}

// paletteColor picks the palette entry for thickness t relative to the
// thickest tip. An empty palette yields transparent black.
func paletteColor(palette []color.RGBA, t, maxT float64) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	last := len(palette) - 1
	if maxT <= 0 || t <= 0 {
		return palette[0]
	}
	idx := int(t / maxT * float64(last))
	if idx > last {
		idx = last
	}
	return palette[idx]
}
