//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"venation/internal/colonize"
	"venation/internal/core"
)

type zoneProvider interface {
	Attractors() []colonize.Attractor
	Config() colonize.Config
}

// Overlay draws the attraction and absorption zones around every attractor.
type Overlay struct {
	sim   core.Sim
	scale int
	zones OverlayZones
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// SetSim points the overlay at a new simulation.
func (o *Overlay) SetSim(sim core.Sim) { o.sim = sim }

// Zones reports which zones are visible.
func (o *Overlay) Zones() OverlayZones { return o.zones }

// Update toggles zones: 1 attraction, 2 absorption, Z both.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.zones.Attraction = !o.zones.Attraction
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.zones.Absorption = !o.zones.Absorption
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		o.zones = o.zones.Toggle()
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.zones.Any() {
		return
	}
	provider, ok := o.sim.(zoneProvider)
	if !ok {
		return
	}
	scale := float32(o.scale)
	if scale <= 0 {
		scale = 1
	}
	params := provider.Config().Params
	for _, a := range provider.Attractors() {
		x, y := float32(a.Pos.X)*scale, float32(a.Pos.Y)*scale
		if o.zones.Attraction {
			vector.StrokeCircle(screen, x, y, float32(params.AttractionRadius)*scale, 1, attractionTint, true)
		}
		if o.zones.Absorption {
			vector.DrawFilledCircle(screen, x, y, float32(params.AbsorptionRadius)*scale, absorptionTint, true)
		}
	}
}

var (
	attractionTint = color.RGBA{R: 64, G: 164, B: 223, A: 60}
	absorptionTint = color.RGBA{R: 255, G: 120, B: 40, A: 70}
)
