package app

import (
	"fmt"

	"venation/internal/colonize"
	"venation/internal/core"
	"venation/internal/runfile"
)

// sceneSize converts an outside window size into scene dimensions, leaving
// hud pixels for the panel. ok is false when no scene fits.
func sceneSize(outW, outH, hud, scale int) (core.Size, bool) {
	scale = max(scale, 1)
	s := core.Size{W: (outW - max(hud, 0)) / scale, H: outH / scale}
	return s, s.W > 0 && s.H > 0
}

// Resize rebuilds the mask described by f at size and moves e onto it,
// rescaling every tip and attractor. The returned file carries the new
// dimensions. On error e is left untouched.
func Resize(e *colonize.Engine, f runfile.File, size core.Size) (runfile.File, error) {
	if size.W <= 0 || size.H <= 0 {
		return f, fmt.Errorf("resize to %dx%d: empty scene", size.W, size.H)
	}
	f.Engine.Width, f.Engine.Height = size.W, size.H
	m, err := f.Mask()
	if err != nil {
		return f, fmt.Errorf("resize to %dx%d: %w", size.W, size.H, err)
	}
	e.Update(m)
	return f, nil
}
