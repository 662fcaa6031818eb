//go:build !ebiten

package app

import (
	"errors"
	"testing"

	"ca1/internal/core"
	"ca1/internal/generate"
)

func TestNewWithoutGUI(t *testing.T) {
	g, err := New(generate.Plan{}, NewConfig(core.SystemClock))
	if !errors.Is(err, ErrNoGUI) || g != nil {
		t.Fatalf("New = %v, %v; want nil, ErrNoGUI", g, err)
	}
}
