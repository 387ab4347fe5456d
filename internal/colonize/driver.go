package colonize

import "context"

// State is the lifecycle state of a Driver run.
type State uint8

const (
	StateIdle State = iota
	StateStepping
	StateQuiescent
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStepping:
		return "stepping"
	case StateQuiescent:
		return "quiescent"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stepper advances a simulation by one iteration and reports growth.
type Stepper interface {
	Step() bool
}

// YieldFunc is called after every completed step. Returning false stops the
// run.
type YieldFunc func(step int, grew bool) bool

// RunResult summarizes a finished run.
type RunResult struct {
	Steps int
	State State
}

// Driver repeatedly steps a simulation until it stops growing, yielding
// control between steps. A Driver can be run again after the underlying
// simulation is cleared and reseeded.
type Driver struct {
	sim      Stepper
	state    State
	maxSteps int
}

// NewDriver returns an idle driver for sim. A positive maxSteps bounds every
// run; zero means unbounded.
func NewDriver(sim Stepper, maxSteps int) *Driver {
	return &Driver{sim: sim, maxSteps: maxSteps}
}

// State returns the state reached by the most recent run.
func (d *Driver) State() State { return d.state }

// Run steps until a step reports no growth (quiescent), ctx is cancelled,
// yield returns false or the step limit is hit (stopped). Cancellation is
// checked once before every step; a step always runs to completion. The
// context error is returned when cancellation ended the run.
func (d *Driver) Run(ctx context.Context, yield YieldFunc) (RunResult, error) {
	d.state = StateStepping
	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			d.state = StateStopped
			return RunResult{Steps: steps, State: d.state}, err
		}
		if d.maxSteps > 0 && steps >= d.maxSteps {
			d.state = StateStopped
			return RunResult{Steps: steps, State: d.state}, nil
		}
		grew := d.sim.Step()
		steps++
		if !grew {
			d.state = StateQuiescent
			if yield != nil {
				yield(steps, false)
			}
			return RunResult{Steps: steps, State: d.state}, nil
		}
		if yield != nil && !yield(steps, true) {
			d.state = StateStopped
			return RunResult{Steps: steps, State: d.state}, nil
		}
	}
}

// Tick performs a single cooperative step for hosts that own the loop, such
// as a frame-driven GUI. It returns false once the run is quiescent.
func (d *Driver) Tick() bool {
	if d.sim.Step() {
		d.state = StateStepping
		return true
	}
	d.state = StateQuiescent
	return false
}

// Resume marks a quiescent or stopped driver as idle so a host knows new
// input may produce growth again.
func (d *Driver) Resume() {
	if d.state != StateStepping {
		d.state = StateIdle
	}
}
