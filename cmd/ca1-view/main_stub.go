//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"ca1/internal/app"
)

func main() {
	fmt.Fprintf(os.Stderr, "ca1-view: %v\n", app.ErrNoGUI)
	fmt.Fprintln(os.Stderr, "for headless output use ./cmd/ca1 (PNG, SVG or -preview in the terminal)")
	os.Exit(2)
}
