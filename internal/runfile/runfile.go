// Package runfile reads and writes TOML run descriptions: which mask to grow
// in, the engine configuration, and where to put the result.
package runfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"venation/internal/colonize"
	"venation/internal/mask"
	"venation/internal/maskimg"
	"venation/internal/presets"
)

// ErrConflictingMask is returned when more than one mask source is set.
var ErrConflictingMask = errors.New("runfile: set at most one of preset, mask and text")

// File describes a single growth run.
type File struct {
	// Mask sources; at most one may be set. With none, the whole canvas is
	// interior.
	Preset   string `toml:"preset"`
	MaskPath string `toml:"mask"`
	Text     string `toml:"text"`

	Output   string  `toml:"output"`    // PNG path
	Scale    float64 `toml:"scale"`     // output pixels per unit
	MaxSteps int     `toml:"max_steps"` // 0 means until quiescent
	Nodes    bool    `toml:"nodes"`     // draw tips as dots

	Engine colonize.Config `toml:"engine"`
}

// Default returns the parameters used for keys a run file leaves out.
func Default() File {
	cfg := colonize.DefaultConfig()
	cfg.Seeding = colonize.Seeding{Tips: 1, Attractors: 1000}
	return File{
		Output:   "venation.png",
		Scale:    1,
		MaxSteps: 0,
		Engine:   cfg,
	}
}

// Parse decodes a run file from r over the defaults.
func Parse(r io.Reader) (File, error) {
	f := Default()
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode run file: %w", err)
	}
	return f, f.validate()
}

// Load decodes the run file at path over the defaults.
func Load(path string) (File, error) {
	f := Default()
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("decode run file %s: %w", path, err)
	}
	return f, f.validate()
}

// Encode writes f as TOML.
func (f File) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode run file: %w", err)
	}
	return nil
}

func (f File) validate() error {
	set := 0
	for _, s := range []string{f.Preset, f.MaskPath, f.Text} {
		if s != "" {
			set++
		}
	}
	if set > 1 {
		return ErrConflictingMask
	}
	if f.Preset != "" {
		if _, ok := presets.Defaults(f.Preset); !ok {
			return fmt.Errorf("%w: %q", presets.ErrUnknownPreset, f.Preset)
		}
	}
	return nil
}

// Mask builds the mask described by f at the engine's dimensions.
func (f File) Mask() (*mask.Mask, error) {
	w, h := f.Engine.Width, f.Engine.Height
	switch {
	case f.MaskPath != "":
		return maskimg.LoadMask(f.MaskPath, w, h)
	case f.Text != "":
		return maskimg.FromText(f.Text, w, h)
	case f.Preset != "":
		return presets.Mask(f.Preset, w, h)
	default:
		return mask.Full(w, h), nil
	}
}

// Build returns a reset engine ready to run.
func (f File) Build() (*colonize.Engine, error) {
	m, err := f.Mask()
	if err != nil {
		return nil, err
	}
	e := colonize.NewWithConfig(f.Engine, m)
	e.Reset(f.Engine.Seed)
	return e, nil
}

// FromEngine captures the engine's configuration as a run file.
func FromEngine(e *colonize.Engine) File {
	f := Default()
	f.Engine = e.Config()
	return f
}
