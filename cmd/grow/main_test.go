package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"venation/internal/colonize"
	"venation/internal/runfile"
)

func smallRun(t *testing.T) runfile.File {
	t.Helper()
	f := runfile.Default()
	f.Preset = "ellipse"
	f.Output = filepath.Join(t.TempDir(), "out.png")
	f.MaxSteps = 300
	f.Engine.Width, f.Engine.Height = 80, 60
	f.Engine.Seeding = colonize.Seeding{Tips: 1, Attractors: 60}
	return f
}

func TestRunWritesPNG(t *testing.T) {
	f := smallRun(t)
	var out bytes.Buffer
	if err := run(context.Background(), f, options{every: 50, verbose: true}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	report := out.String()
	for _, want := range []string{"colonize-open 80x60", "after", "wrote " + f.Output} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}

	file, err := os.Open(f.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Fatalf("unexpected image size %v", b)
	}
}

func TestRunStopsWhenCancelled(t *testing.T) {
	f := smallRun(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := run(ctx, f, options{}, &out); err != nil {
		t.Fatalf("cancelled run should still write its image: %v", err)
	}
	if !strings.Contains(out.String(), "stopped after 0 steps") {
		t.Fatalf("expected an immediate stop:\n%s", out.String())
	}
}

func TestRunReportsBadOutput(t *testing.T) {
	f := smallRun(t)
	f.Output = filepath.Join(t.TempDir(), "missing", "out.png")
	if err := run(context.Background(), f, options{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestOptionsApply(t *testing.T) {
	f := runfile.Default()
	f.MaxSteps = 10
	options{steps: -1}.apply(&f)
	if f.MaxSteps != 10 || f.Output != runfile.Default().Output {
		t.Fatalf("unset flags should keep the run file values: %+v", f)
	}
	options{steps: 0, out: "x.png"}.apply(&f)
	if f.MaxSteps != 0 || f.Output != "x.png" {
		t.Fatalf("flags should override the run file: %+v", f)
	}
}
