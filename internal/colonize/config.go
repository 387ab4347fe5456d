package colonize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownMode is returned when a mode name is not recognised.
var ErrUnknownMode = errors.New("colonize: unknown mode")

// Mode selects how attractors are associated with tips.
type Mode uint8

const (
	// ModeOpen associates each attractor with its single nearest tip.
	ModeOpen Mode = iota
	// ModeClosed associates each attractor with all of its relative neighbors.
	ModeClosed
)

func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeClosed:
		return "closed"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return ModeOpen, nil
	case "closed":
		return ModeClosed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Params holds the geometric tunables of the growth step.
type Params struct {
	AttractionRadius float64 `toml:"attraction_radius"`
	AbsorptionRadius float64 `toml:"absorption_radius"`
	StepLength       float64 `toml:"step_length"`
}

// Seeding describes how many entities Reset scatters over the mask.
type Seeding struct {
	Tips       int `toml:"tips"`
	Attractors int `toml:"attractors"`
}

// Config controls an Engine.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Seed int64 `toml:"seed"`

	Mode             Mode `toml:"mode"`
	Convex           bool `toml:"convex"`
	DisturbDirection bool `toml:"disturb_direction"`

	Params  Params  `toml:"params"`
	Seeding Seeding `toml:"seeding"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  512,
		Height: 512,
		Seed:   1337,
		Mode:   ModeOpen,
		Convex: true,
		Params: Params{
			AttractionRadius: 128,
			AbsorptionRadius: 16,
			StepLength:       2,
		},
	}
}

// Option adjusts a Config before an Engine is built.
type Option func(*Config)

// WithConvex controls whether segment containment checks are skipped.
func WithConvex(convex bool) Option {
	return func(c *Config) { c.Convex = convex }
}

// WithDisturbDirection enables random perturbation of growth directions.
func WithDisturbDirection(on bool) Option {
	return func(c *Config) { c.DisturbDirection = on }
}

// WithParams replaces the geometric parameters.
func WithParams(p Params) Option {
	return func(c *Config) { c.Params = p }
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithSeeding sets how many tips and attractors Reset scatters.
func WithSeeding(s Seeding) Option {
	return func(c *Config) { c.Seeding = s }
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["convex"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Convex = parsed
		}
	}
	if v, ok := cfg["disturb"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.DisturbDirection = parsed
		}
	}
	if v, ok := cfg["attraction_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.AttractionRadius = parsed
		}
	}
	if v, ok := cfg["absorption_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.AbsorptionRadius = parsed
		}
	}
	if v, ok := cfg["step_length"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.StepLength = parsed
		}
	}
	if v, ok := cfg["tips"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Seeding.Tips = parsed
		}
	}
	if v, ok := cfg["attractors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Seeding.Attractors = parsed
		}
	}
	return c
}
