//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"ca1/internal/app"
	"ca1/internal/core"
	"ca1/internal/generate"
	"ca1/internal/themes"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig(core.SystemClock)
	cfg.Rows = 200
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	d, err := generate.New(cfg.Options(logger))
	if err != nil {
		log.Fatal(err)
	}
	store, err := themes.Open(cfg.Themes)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	plan, err := d.Configure(store)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(plan)

	game, err := app.New(plan, cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("ca1: " + plan.String())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(cfg.Cols*cfg.Scale, cfg.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
