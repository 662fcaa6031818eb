//go:build ebiten

package app

import (
	"context"

	"ca1/internal/core"
	"ca1/internal/generate"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game reveals one generation per fixed step, one pixel per cell.
type Game struct {
	canvas *reveal
	scale  int
	img    *ebiten.Image
	pace   *core.FixedStep
	paused bool
}

// New constructs a Game drawing plan on a cols x rows canvas.
func New(plan generate.Plan, cfg *Config) (*Game, error) {
	return &Game{
		canvas: newReveal(plan, cfg.Cols, cfg.Rows, cfg.Workers),
		scale:  cfg.Scale,
		img:    ebiten.NewImage(cfg.Cols, cfg.Rows),
		pace:   core.NewFixedStep(cfg.Rate, nil),
	}, nil
}

// Reset clears the canvas and starts again from the first generation.
func (g *Game) Reset() { g.canvas.reset() }

// Update handles per-frame logic and reveals due generations.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	due := g.pace.Steps()
	if g.paused {
		return nil
	}
	return g.canvas.advance(context.Background(), due)
}

// Draw renders the revealed generations.
func (g *Game) Draw(screen *ebiten.Image) {
	g.img.WritePixels(g.canvas.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.cols * g.scale, g.canvas.rows * g.scale
}
