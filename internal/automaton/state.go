package automaton

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest run of cells handed to one worker.
const minChunk = 256

// State is one generation of a ring of 2-bit symbols.
type State struct {
	v []uint8
}

// WithSize returns an all-zero state of n cells. Non-positive sizes are
// raised to 1 so indexing is always defined.
func WithSize(n int) State {
	if n <= 0 {
		n = 1
	}
	return State{v: make([]uint8, n)}
}

// Len returns the number of cells.
func (s State) Len() int { return len(s.v) }

// wrap maps any index onto [0, Len) using a Euclidean remainder.
func (s State) wrap(i int) int {
	n := len(s.v)
	return (i%n + n) % n
}

// Get returns the symbol at i, wrapping around both ends.
func (s State) Get(i int) uint8 {
	return s.v[s.wrap(i)]
}

// Set stores the low two bits of value at i, wrapping around both ends.
func (s State) Set(i int, value uint8) {
	s.v[s.wrap(i)] = value & 3
}

// Cells exposes the symbols. Callers must not modify the slice.
func (s State) Cells() []uint8 { return s.v }

// Apply computes the next generation without modifying s.
func (s State) Apply(rule Rule) State {
	next := make([]uint8, len(s.v))
	s.applyRange(rule, next, 0, len(s.v))
	return State{v: next}
}

// ApplyParallel computes the same generation as Apply, splitting the ring into
// contiguous chunks evaluated by up to workers goroutines.
func (s State) ApplyParallel(ctx context.Context, rule Rule, workers int) (State, error) {
	n := len(s.v)
	if workers <= 1 || n < 2*minChunk {
		return s.Apply(rule), ctx.Err()
	}

	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	next := make([]uint8, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.applyRange(rule, next, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return State{}, err
	}
	return State{v: next}, nil
}

func (s State) applyRange(rule Rule, dst []uint8, lo, hi int) {
	for i := lo; i < hi; i++ {
		left := s.Get(i - 1)
		center := s.v[i]
		right := s.Get(i + 1)
		dst[i] = rule.Apply(Code(left, center, right))
	}
}

// String renders the symbols as a bracketed, comma-separated list.
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(']')
	return b.String()
}
