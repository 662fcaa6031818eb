//go:build !ebiten

package app

import "ca1/internal/generate"

// Game has no window in headless builds.
type Game struct{}

// New reports ErrNoGUI: the viewer needs the ebiten build tag.
func New(generate.Plan, *Config) (*Game, error) {
	return nil, ErrNoGUI
}
