// Command sweep grows one scene under a grid of attraction and absorption
// radii in both modes and prints a comparison table.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"venation/internal/colonize"
	"venation/internal/runfile"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Set accepts comma separated values and may be repeated.
func (l *floatList) Set(value string) error {
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid radius %q", field)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	log.SetPrefix("sweep: ")
	log.SetFlags(0)

	preset := flag.String("preset", "ellipse", "scene preset when no run file is given")
	config := flag.String("config", "", "TOML run file providing the base scene")
	steps := flag.Int("steps", 2000, "step limit per variant")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel variant runs")
	seed := flag.Int64("seed", 1337, "seed shared by every variant")
	sortBy := flag.String("sort", "", "sort rows by tips, branches or steps (descending)")
	var attraction, absorption floatList
	flag.Var(&attraction, "attract", "attraction radii, comma separated (default 32,64,128)")
	flag.Var(&absorption, "absorb", "absorption radii, comma separated (default 4,8,16)")
	flag.Parse()

	if len(attraction) == 0 {
		attraction = floatList{32, 64, 128}
	}
	if len(absorption) == 0 {
		absorption = floatList{4, 8, 16}
	}

	f, err := baseFile(*config, *preset, *seed)
	if err != nil {
		log.Fatal(err)
	}
	m, err := f.Mask()
	if err != nil {
		log.Fatal(err)
	}

	variants := colonize.VariantGrid(f.Engine.Params, attraction, absorption)
	if len(variants) == 0 {
		log.Fatal("no valid variants: every absorption radius exceeds every attraction radius")
	}
	fmt.Printf("Sweeping %d variants on %dx%d (%d tips, %d attractors, %d workers)\n",
		len(variants), m.Width(), m.Height(), f.Engine.Seeding.Tips, f.Engine.Seeding.Attractors, *workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := colonize.Sweep(ctx, f.Engine, m, variants, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}
	sortResults(results, *sortBy)
	writeTable(os.Stdout, results)
	fmt.Printf("\nFinished in %s\n", time.Since(start).Round(time.Millisecond))
}

func baseFile(config, preset string, seed int64) (runfile.File, error) {
	if config != "" {
		return runfile.Load(config)
	}
	f := runfile.Default()
	f.Preset = preset
	f.Engine.Seed = seed
	f.Engine.Width, f.Engine.Height = 256, 256
	f.Engine.Seeding = colonize.Seeding{Tips: 2, Attractors: 800}
	return f, nil
}

func sortResults(results []colonize.RunSummary, key string) {
	var metric func(colonize.RunSummary) int
	switch key {
	case "tips":
		metric = func(r colonize.RunSummary) int { return r.Tips }
	case "branches":
		metric = func(r colonize.RunSummary) int { return r.Branches }
	case "steps":
		metric = func(r colonize.RunSummary) int { return r.Steps }
	default:
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		return metric(results[i]) > metric(results[j])
	})
}

func writeTable(w io.Writer, results []colonize.RunSummary) {
	name := len("variant")
	for _, r := range results {
		name = max(name, len(r.Variant.Name))
	}
	fmt.Fprintf(w, "%-*s %6s %6s %8s %10s %7s %s\n", name, "variant", "steps", "tips", "branches", "attractors", "thick", "state")
	for _, r := range results {
		fmt.Fprintf(w, "%-*s %6d %6d %8d %10d %7.2f %s\n",
			name, r.Variant.Name, r.Steps, r.Tips, r.Branches, r.Attractors, r.MaxThickness, r.State)
	}
}
