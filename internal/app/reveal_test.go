package app

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"

	"ca1/internal/automaton"
	"ca1/internal/core"
	"ca1/internal/generate"
	"ca1/internal/themes"
)

var revealTheme = themes.Theme{
	core.FromRGB(0, 0, 0),
	core.FromRGB(1, 1, 1),
	core.FromRGB(2, 2, 2),
	core.FromRGB(3, 3, 3),
	core.FromRGB(4, 4, 4),
}

func allThreesPlan() generate.Plan {
	return generate.Plan{Theme: revealTheme, Rule: automaton.NewRule(^uint64(0))}
}

func TestRevealPaintsRows(t *testing.T) {
	r := newReveal(allThreesPlan(), 3, 2, 1)
	if err := r.advance(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		4, 4, 4, 255, 3, 3, 3, 255, 4, 4, 4, 255,
		4, 4, 4, 255, 4, 4, 4, 255, 4, 4, 4, 255,
	}
	if !bytes.Equal(r.buf, want) {
		t.Fatalf("after one row buf = %v", r.buf)
	}

	if err := r.advance(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if !r.done() || r.row != 2 {
		t.Fatalf("row = %d, want 2", r.row)
	}
	if !bytes.Equal(r.buf[12:], []byte{3, 3, 3, 255, 3, 3, 3, 255, 3, 3, 3, 255}) {
		t.Fatalf("second row = %v", r.buf[12:])
	}
}

func TestRevealStopsAtLastRow(t *testing.T) {
	r := newReveal(allThreesPlan(), 7, 2, 1)
	if err := r.advance(context.Background(), 10); err != nil {
		t.Fatal(err)
	}
	// One more generation would turn the all-threes row into all ones.
	if want := []uint8{3, 3, 3, 3, 3, 3, 3}; !slices.Equal(r.state.Cells(), want) {
		t.Fatalf("state after last row = %v, want %v", r.state.Cells(), want)
	}
}

func TestRevealReset(t *testing.T) {
	r := newReveal(allThreesPlan(), 3, 2, 1)
	if err := r.advance(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	r.reset()
	if r.row != 0 || r.done() {
		t.Fatalf("row after reset = %d", r.row)
	}
	if want := []uint8{0, 3, 0}; !slices.Equal(r.state.Cells(), want) {
		t.Fatalf("state after reset = %v", r.state.Cells())
	}
	for i := 0; i < len(r.buf); i += 4 {
		if !bytes.Equal(r.buf[i:i+4], []byte{4, 4, 4, 255}) {
			t.Fatalf("buf not cleared at %d: %v", i, r.buf[i:i+4])
		}
	}
}

func TestRevealCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := newReveal(allThreesPlan(), 3, 4, 1)
	if err := r.advance(ctx, 3); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
