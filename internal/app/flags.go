package app

import (
	"flag"

	"go.uber.org/zap"

	"ca1/internal/automaton"
	"ca1/internal/core"
	"ca1/internal/generate"
	"ca1/internal/render"
)

// Config represents the command-line parameters for a run.
type Config struct {
	Rows     int
	Cols     int
	CellSize int
	Rule     *automaton.Rule
	Themes   string
	Seed     core.Seed
	Dest     string
	Workers  int
	Caption  bool
	Preview  bool
	Rate     int
	Scale    int
	Verbose  bool
}

// NewConfig returns a Config populated with defaults. The default seed is the
// clock's current Unix time.
func NewConfig(clock core.Clock) *Config {
	return &Config{
		Rows:     1000,
		Cols:     100,
		CellSize: 6,
		Themes:   "themes.bin",
		Seed:     core.DefaultSeed(clock),
		Dest:     "out.png",
		Workers:  1,
		Rate:     30,
		Scale:    4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of generations to draw")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of cells per generation")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell edge in pixels")
	fs.Var(ruleValue{&c.Rule}, "rule", "rule as hex (default: drawn from the seed)")
	fs.StringVar(&c.Themes, "themes", c.Themes, "theme file")
	fs.Var((*seedValue)(&c.Seed), "seed", "seed as hex (default: current Unix time)")
	fs.StringVar(&c.Dest, "dest", c.Dest, "output path; .svg writes SVG, anything else PNG")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation")
	fs.BoolVar(&c.Caption, "caption", c.Caption, "draw seed, theme and rule below the image")
	fs.BoolVar(&c.Preview, "preview", c.Preview, "draw in the terminal instead of writing a file")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second when previewing")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the viewer")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log progress to stderr")
}

// Options converts the configuration into driver options.
func (c *Config) Options(log *zap.Logger) generate.Options {
	return generate.Options{
		Seed:    c.Seed,
		Rule:    c.Rule,
		Rows:    c.Rows,
		Cols:    c.Cols,
		Workers: c.Workers,
		Logger:  log,
	}
}

// Layout returns the image geometry.
func (c *Config) Layout() render.Layout {
	return render.Layout{Cols: c.Cols, Rows: c.Rows, CellSize: c.CellSize, Footer: c.Caption}
}

// Logger builds the console logger: warnings only, or info with -v.
func (c *Config) Logger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if c.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

type seedValue core.Seed

func (v *seedValue) String() string { return core.Seed(*v).String() }

func (v *seedValue) Set(s string) error {
	seed, err := core.ParseSeed(s)
	if err != nil {
		return err
	}
	*v = seedValue(seed)
	return nil
}

type ruleValue struct {
	rule **automaton.Rule
}

func (v ruleValue) String() string {
	if v.rule == nil || *v.rule == nil {
		return ""
	}
	return (*v.rule).String()
}

func (v ruleValue) Set(s string) error {
	r, err := automaton.ParseRule(s)
	if err != nil {
		return err
	}
	*v.rule = &r
	return nil
}
