package ui

// OverlayZones tracks which attractor zones the overlay shows.
type OverlayZones struct {
	Attraction bool
	Absorption bool
}

// Any reports whether at least one zone is visible.
func (z OverlayZones) Any() bool { return z.Attraction || z.Absorption }

// Toggle hides every zone when any is visible, otherwise shows both.
func (z OverlayZones) Toggle() OverlayZones {
	if z.Any() {
		return OverlayZones{}
	}
	return OverlayZones{Attraction: true, Absorption: true}
}
