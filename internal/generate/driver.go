// Package generate runs one reproducible automaton drawing from a seed.
package generate

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ca1/internal/automaton"
	"ca1/internal/core"
	"ca1/internal/themes"
)

// SeedSymbol is the value of the single live cell in the first generation.
const SeedSymbol = 3

var (
	// ErrInvalidDimensions is returned for non-positive row or column counts.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrPhase is returned when an operation is called out of order.
	ErrPhase = errors.New("driver phase")
)

// Phase is a stage of a run.
type Phase int

const (
	Seeded Phase = iota
	Configured
	Running
	Done
)

func (p Phase) String() string {
	switch p {
	case Seeded:
		return "seeded"
	case Configured:
		return "configured"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// RowSink receives each generation in order. cells is only valid for the
// duration of the call.
type RowSink interface {
	Row(j int, cells []uint8) error
}

// RowSinkFunc adapts a function to RowSink.
type RowSinkFunc func(j int, cells []uint8) error

// Row calls f.
func (f RowSinkFunc) Row(j int, cells []uint8) error { return f(j, cells) }

// ThemeSource picks a palette with a random stream.
type ThemeSource interface {
	Pick(p themes.Picker) (int, themes.Theme, error)
}

// Options describes a run.
type Options struct {
	Seed core.Seed
	// Rule overrides the rule drawn from the seed stream.
	Rule    *automaton.Rule
	Rows    int
	Cols    int
	Workers int
	Logger  *zap.Logger
}

// Plan is everything a run resolved from its seed.
type Plan struct {
	Seed       core.Seed
	ThemeIndex int
	Theme      themes.Theme
	Rule       automaton.Rule
}

func (p Plan) String() string {
	return fmt.Sprintf("seed: %s, theme: %d, rule: %s", p.Seed, p.ThemeIndex, p.Rule)
}

// Driver steps through Seeded, Configured, Running and Done exactly once.
type Driver struct {
	opts  Options
	log   *zap.Logger
	phase Phase
	plan  Plan
}

// New validates opts and returns a driver in the Seeded phase.
func New(opts Options) (*Driver, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, fmt.Errorf("%w: %d rows x %d cols", ErrInvalidDimensions, opts.Rows, opts.Cols)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("seed resolved", zap.Stringer("seed", opts.Seed))
	return &Driver{opts: opts, log: log, phase: Seeded}, nil
}

// Phase returns the current phase.
func (d *Driver) Phase() Phase { return d.phase }

// Plan returns the resolved plan. It is the zero Plan before Configure.
func (d *Driver) Plan() Plan { return d.plan }

// Configure derives the random stream from the seed, draws the theme index
// and then, unless one was supplied, the rule.
func (d *Driver) Configure(src ThemeSource) (Plan, error) {
	if d.phase != Seeded {
		return Plan{}, fmt.Errorf("%w: configure while %s", ErrPhase, d.phase)
	}
	rng := core.NewRNG(d.opts.Seed)
	idx, theme, err := src.Pick(rng)
	if err != nil {
		return Plan{}, fmt.Errorf("pick theme: %w", err)
	}

	var rule automaton.Rule
	if d.opts.Rule != nil {
		rule = *d.opts.Rule
	} else {
		rule = automaton.NewRule(rng.Uint64())
	}

	d.plan = Plan{Seed: d.opts.Seed, ThemeIndex: idx, Theme: theme, Rule: rule}
	d.phase = Configured
	d.log.Info("configured",
		zap.Int("theme", idx),
		zap.Stringer("rule", rule),
		zap.Bool("rule_from_seed", d.opts.Rule == nil),
	)
	return d.plan, nil
}

// InitialState returns the first generation: all zeros except SeedSymbol at
// the horizontal midpoint.
func InitialState(cols int) automaton.State {
	s := automaton.WithSize(cols)
	s.Set(cols/2, SeedSymbol)
	return s
}

// Run hands every generation to sink, starting from InitialState. The
// generation after the last row is never computed.
func (d *Driver) Run(ctx context.Context, sink RowSink) error {
	if d.phase != Configured {
		return fmt.Errorf("%w: run while %s", ErrPhase, d.phase)
	}
	d.phase = Running

	state := InitialState(d.opts.Cols)
	for j := 0; j < d.opts.Rows; j++ {
		if err := sink.Row(j, state.Cells()); err != nil {
			return fmt.Errorf("row %d: %w", j, err)
		}
		if j == d.opts.Rows-1 {
			break
		}
		next, err := state.ApplyParallel(ctx, d.plan.Rule, d.opts.Workers)
		if err != nil {
			return fmt.Errorf("generation %d: %w", j+1, err)
		}
		state = next
	}

	d.phase = Done
	d.log.Info("generation complete",
		zap.Int("rows", d.opts.Rows),
		zap.Int("cols", d.opts.Cols),
	)
	return nil
}
