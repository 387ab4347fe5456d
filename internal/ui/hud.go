//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"venation/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// row is one adjustable parameter line on the panel.
type row struct {
	ctrl core.ParameterControl
	reading

	top      int
	dec, inc image.Rectangle // bool rows only use inc
}

// HUD renders the parameter panel to the right of the growth view.
type HUD struct {
	sim    core.Sim
	title  string
	rows   []row
	status []string

	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
	bools  core.BoolParameterSetter

	width   int
	offsetX int
	panel   *ebiten.Image
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD for sim with a panel of the given width. A
// non-positive width disables drawing.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.SetSim(sim)
	return h
}

// SetSim rebinds the HUD to a new simulation and rebuilds its rows.
func (h *HUD) SetSim(sim core.Sim) {
	h.sim = sim
	h.title = "Controls"
	if sim != nil && sim.Name() != "" {
		h.title = sim.Name()
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	h.bools, _ = sim.(core.BoolParameterSetter)

	h.rows = h.rows[:0]
	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return
	}
	for i, ctrl := range provider.ParameterControls() {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		inc := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		dec := inc.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.rows = append(h.rows, row{
			ctrl:    ctrl,
			reading: reading{text: missingValue},
			top:     top,
			dec:     dec,
			inc:     inc,
		})
	}
}

// SetStatus replaces the lines shown below the controls.
func (h *HUD) SetStatus(lines ...string) {
	if h == nil {
		return
	}
	h.status = lines
}

// Update re-reads parameter values and applies any button click. offsetX is
// the screen x of the panel's left edge.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	snap := provider.Parameters()
	for i := range h.rows {
		r := &h.rows[i]
		p, found := snap.Lookup(r.ctrl.Key)
		if !found {
			r.reading = reading{text: missingValue}
			continue
		}
		r.reading = readControl(r.ctrl, p)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.click(image.Pt(x-h.offsetX, y))
	}
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && h.width > 0 && x >= h.offsetX && x < h.offsetX+h.width && y >= 0
}

func (h *HUD) click(pt image.Point) {
	for i := range h.rows {
		r := &h.rows[i]
		if !r.ok {
			continue
		}
		switch {
		case pt.In(r.inc):
			h.apply(r, 1)
			return
		case pt.In(r.dec) && r.ctrl.Type != core.ParamTypeBool:
			h.apply(r, -1)
			return
		}
	}
}

// apply moves r one step in dir, or flips it for bool rows.
func (h *HUD) apply(r *row, dir int) {
	key := r.ctrl.Key
	switch r.ctrl.Type {
	case core.ParamTypeBool:
		if h.bools != nil && h.bools.SetBoolParameter(key, !r.on) {
			r.on = !r.on
		}
	case core.ParamTypeInt:
		v, changed := nudge(r.ctrl, r.num, dir)
		if changed && h.ints != nil && h.ints.SetIntParameter(key, int(v)) {
			r.num = v
		}
	case core.ParamTypeFloat:
		v, changed := nudge(r.ctrl, r.num, dir)
		if changed && h.floats != nil && h.floats.SetFloatParameter(key, v) {
			r.num = v
			r.text = formatFloat(r.ctrl, v)
		}
	}
}

func (h *HUD) enabled(r *row, dir int) bool {
	if !r.ok {
		return false
	}
	switch r.ctrl.Type {
	case core.ParamTypeBool:
		return h.bools != nil
	case core.ParamTypeInt:
		_, changed := nudge(r.ctrl, r.num, dir)
		return changed && h.ints != nil
	case core.ParamTypeFloat:
		_, changed := nudge(r.ctrl, r.num, dir)
		return changed && h.floats != nil
	}
	return false
}

// Draw paints the panel at offsetX, matching the height of the scaled view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 || h.sim == nil {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Size() != image.Pt(h.width, height) {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	if len(h.rows) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, panelPadding+headerBaseline+infoSpacing, dimColor)
	}
	for i := range h.rows {
		h.drawRow(&h.rows[i])
	}
	y := controlsTop + len(h.rows)*lineHeight + infoSpacing
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += statusSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(r *row) {
	face := basicfont.Face7x13
	baseline := r.top + labelBaseline
	text.Draw(h.panel, r.ctrl.Label, face, panelPadding, baseline, textColor)

	valueColor := textColor
	if !r.ok {
		valueColor = dimColor
	}
	right := r.dec.Min.X - buttonGap
	if r.ctrl.Type == core.ParamTypeBool {
		right = r.inc.Min.X - buttonGap
		h.drawButton(r.inc, "*", h.enabled(r, 1))
	} else {
		h.drawButton(r.dec, "-", h.enabled(r, -1))
		h.drawButton(r.inc, "+", h.enabled(r, 1))
	}
	w := text.BoundString(face, r.text).Dx()
	text.Draw(h.panel, r.text, face, right-w, baseline, valueColor)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := buttonColor, buttonText
	if !enabled {
		bg, fg = buttonOffColor, buttonOffText
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	text.Draw(h.panel, label, face, rect.Min.X+(rect.Dx()-b.Dx())/2, rect.Min.Y+(rect.Dy()+b.Dy())/2, fg)
}

var (
	panelColor     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonText     = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffText  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
