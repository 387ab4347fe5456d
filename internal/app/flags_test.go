package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"venation/internal/colonize"
	"venation/internal/presets"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("colonize", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestBindDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Preset != "canvas" || cfg.Scale != 2 || cfg.SPS != 30 || len(cfg.Overrides) != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestFileAppliesOverrides(t *testing.T) {
	cfg := parse(t, "-preset", "notch", "-seed", "99", "-set", "mode=closed", "-set", "attraction_radius = 32", "-set", "w=120")
	f, err := cfg.File()
	if err != nil {
		t.Fatal(err)
	}
	if f.Preset != "notch" {
		t.Fatalf("preset not carried into the run file: %q", f.Preset)
	}
	e := f.Engine
	if e.Mode != colonize.ModeClosed || e.Params.AttractionRadius != 32 || e.Width != 120 || e.Seed != 99 {
		t.Fatalf("overrides not applied: %+v", e)
	}
	if e.Convex {
		t.Fatal("preset defaults should still apply under overrides")
	}
}

func TestFileMaskSources(t *testing.T) {
	f, err := parse(t, "-text", "VN").File()
	if err != nil {
		t.Fatal(err)
	}
	if f.Text != "VN" || f.Preset != "" {
		t.Fatalf("text source should replace the preset: %+v", f)
	}

	if _, err := parse(t, "-preset", "spiral").File(); !errors.Is(err, presets.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestFileFromConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	body := "preset = \"ellipse\"\n[engine]\nwidth = 90\nheight = 60\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := parse(t, "-config", path, "-preset", "notch").File()
	if err != nil {
		t.Fatal(err)
	}
	if f.Preset != "ellipse" || f.Engine.Width != 90 {
		t.Fatalf("run file should take precedence: %+v", f)
	}
}

func TestSetRejectsMalformed(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("colonize", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected error for -set without '='")
	}
}
