package app

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"venation/internal/colonize"
	"venation/internal/presets"
	"venation/internal/runfile"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset     string
	ConfigPath string
	MaskPath   string
	Text       string

	Scale    int
	TPS      int
	SPS      int
	Seed     int64
	HUDWidth int
	Batch    int

	ExportDir string

	// Overrides are engine settings in FromMap form, applied over the preset.
	Overrides map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset:    "canvas",
		Scale:     2,
		TPS:       60,
		SPS:       30,
		HUDWidth:  260,
		Batch:     200,
		ExportDir: ".",
		Overrides: map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "scene preset: "+strings.Join(presets.Names(), ", "))
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML run file (overrides -preset)")
	fs.StringVar(&c.MaskPath, "mask", c.MaskPath, "PNG or BMP mask image")
	fs.StringVar(&c.Text, "text", c.Text, "grow inside the letters of this text")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "growth steps per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reset (0 keeps the scene's seed)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels, 0 to hide")
	fs.IntVar(&c.Batch, "batch", c.Batch, "attractors added per random-seeding key press")
	fs.StringVar(&c.ExportDir, "export-dir", c.ExportDir, "directory for PNG and TOML exports")
	fs.Func("set", "engine setting key=value, repeatable (e.g. mode=closed)", func(s string) error {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return errors.New("expected key=value")
		}
		if c.Overrides == nil {
			c.Overrides = map[string]string{}
		}
		c.Overrides[strings.TrimSpace(key)] = strings.TrimSpace(value)
		return nil
	})
}

// File resolves the flags into a run description.
func (c *Config) File() (runfile.File, error) {
	if c.ConfigPath != "" {
		return runfile.Load(c.ConfigPath)
	}
	settings, ok := presets.Defaults(c.Preset)
	if !ok {
		return runfile.File{}, fmt.Errorf("%w: %q", presets.ErrUnknownPreset, c.Preset)
	}
	maps.Copy(settings, c.Overrides)
	if c.Seed != 0 {
		settings["seed"] = strconv.FormatInt(c.Seed, 10)
	}

	f := runfile.Default()
	f.Engine = colonize.FromMap(settings)
	switch {
	case c.MaskPath != "":
		f.MaskPath = c.MaskPath
	case c.Text != "":
		f.Text = c.Text
	default:
		f.Preset = c.Preset
	}
	return f, nil
}

