// Command grow runs space-colonization growth headlessly and writes a PNG.
//
// Usage
//
//	grow [-steps N] [-out file.png] [run.toml]
//
// The optional argument is a TOML run file. Keys it leaves out keep their
// defaults; a minimal file looks like:
//
//	text = "V"
//	output = "v.png"
//	scale = 2
//
//	[engine]
//	width = 400
//	height = 400
//	mode = "closed"
//
//	[engine.seeding]
//	tips = 3
//	attractors = 2500
//
// Progress is logged every -every steps and the run log is printed with -v.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"venation/internal/colonize"
	"venation/internal/render"
	"venation/internal/runfile"
)

type options struct {
	steps   int
	every   int
	out     string
	verbose bool
}

func main() {
	log.SetPrefix("grow: ")
	log.SetFlags(0)

	var opts options
	flag.IntVar(&opts.steps, "steps", -1, "step limit (overrides max_steps; 0 means until quiescent)")
	flag.IntVar(&opts.every, "every", 100, "log progress every N steps, 0 to disable")
	flag.StringVar(&opts.out, "out", "", "output PNG (overrides output)")
	flag.BoolVar(&opts.verbose, "v", false, "print the run log")
	flag.Parse()

	f := runfile.Default()
	if flag.NArg() > 0 {
		var err error
		if f, err = runfile.Load(flag.Arg(0)); err != nil {
			log.Fatal(err)
		}
	}
	opts.apply(&f)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, f, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func (o options) apply(f *runfile.File) {
	if o.steps >= 0 {
		f.MaxSteps = o.steps
	}
	if o.out != "" {
		f.Output = o.out
	}
}

// run grows the scene in f, reports progress to w and writes the PNG. An
// interrupted run still writes what has grown so far.
func run(ctx context.Context, f runfile.File, opts options, w io.Writer) error {
	e, err := f.Build()
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	runLog := colonize.NewRunLog()
	e.SetLog(runLog)

	fmt.Fprintf(w, "%s %dx%d tips=%d attractors=%d attract=%g absorb=%g step=%g\n",
		e.Name(), e.Size().W, e.Size().H, len(e.Tips()), len(e.Attractors()),
		f.Engine.Params.AttractionRadius, f.Engine.Params.AbsorptionRadius, f.Engine.Params.StepLength)

	res, runErr := colonize.NewDriver(e, f.MaxSteps).Run(ctx, func(step int, grew bool) bool {
		if opts.every > 0 && step%opts.every == 0 {
			fmt.Fprintf(w, "step %d: tips=%d attractors=%d\n", step, len(e.Tips()), len(e.Attractors()))
		}
		return true
	})
	if runErr != nil {
		log.Printf("run interrupted: %v", runErr)
	}

	s := colonize.Summarize(e)
	fmt.Fprintf(w, "%s after %d steps: tips=%d branches=%d attractors=%d max_thickness=%.2f\n",
		res.State, res.Steps, s.Tips, s.Branches, s.Attractors, s.MaxThickness)
	if opts.verbose {
		fmt.Fprint(w, runLog.Format())
	}

	style := render.DefaultStyle()
	style.Nodes = f.Nodes
	if err := render.WritePNG(f.Output, e, style, f.Scale); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", f.Output)
	return nil
}
