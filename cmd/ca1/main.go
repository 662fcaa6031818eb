package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"ca1/internal/app"
	"ca1/internal/core"
	"ca1/internal/generate"
	"ca1/internal/preview"
	"ca1/internal/render"
	"ca1/internal/themes"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := app.NewConfig(core.SystemClock)
	fs := flag.NewFlagSet("ca1", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "ca1: unexpected arguments: %v\n", fs.Args())
		return ExitUsage
	}

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(stderr, "ca1: logger: %v\n", err)
		return ExitError
	}
	defer log.Sync() //nolint:errcheck // stderr sync fails on some terminals

	if err := generateArt(ctx, cfg, log, stdout); err != nil {
		fmt.Fprintf(stderr, "ca1: %v\n", err)
		if errors.Is(err, generate.ErrInvalidDimensions) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}

func generateArt(ctx context.Context, cfg *app.Config, log *zap.Logger, stdout io.Writer) error {
	if cfg.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", generate.ErrInvalidDimensions, cfg.CellSize)
	}
	d, err := generate.New(cfg.Options(log))
	if err != nil {
		return err
	}

	store, err := themes.Open(cfg.Themes)
	if err != nil {
		return err
	}
	defer store.Close()

	plan, err := d.Configure(store)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, plan)

	if cfg.Preview {
		return previewArt(ctx, cfg, d, plan)
	}

	layout := cfg.Layout()
	surface := render.Create(cfg.Dest, layout)
	grid := render.NewGrid(surface, layout, plan.Theme)
	grid.Background()
	if err := d.Run(ctx, grid); err != nil {
		return err
	}
	grid.Caption(plan.String())

	if err := surface.Save(cfg.Dest); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Dest, err)
	}
	log.Info("wrote image",
		zap.String("dest", cfg.Dest),
		zap.Int("width", layout.Width()),
		zap.Int("height", layout.Height()),
	)
	return nil
}

func previewArt(ctx context.Context, cfg *app.Config, d *generate.Driver, plan generate.Plan) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer screen.Fini()

	term := preview.New(screen, plan.Theme)
	term.Pace(cfg.Rate, nil)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		term.Wait()
		cancel()
	}()

	if err := d.Run(ctx, term); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	<-ctx.Done()
	return nil
}
