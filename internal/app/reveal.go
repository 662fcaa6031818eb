package app

import (
	"context"

	"ca1/internal/automaton"
	"ca1/internal/generate"
	"ca1/internal/render"
)

// reveal paints generations into an RGBA canvas of cols x rows pixels, one
// row at a time.
type reveal struct {
	plan    generate.Plan
	cols    int
	rows    int
	workers int

	buf   []byte
	state automaton.State
	row   int
}

func newReveal(plan generate.Plan, cols, rows, workers int) *reveal {
	r := &reveal{
		plan:    plan,
		cols:    cols,
		rows:    rows,
		workers: workers,
		buf:     make([]byte, 4*cols*rows),
	}
	r.reset()
	return r
}

func (r *reveal) reset() {
	render.Clear(r.buf, r.plan.Theme)
	r.state = generate.InitialState(r.cols)
	r.row = 0
}

func (r *reveal) done() bool { return r.row >= r.rows }

// advance paints up to n more rows. Like the driver, it never computes the
// generation after the last row.
func (r *reveal) advance(ctx context.Context, n int) error {
	for ; n > 0 && !r.done(); n-- {
		off := r.row * r.cols * 4
		render.FillRow(r.buf[off:off+r.cols*4], r.state.Cells(), r.plan.Theme)
		r.row++
		if r.done() {
			break
		}
		next, err := r.state.ApplyParallel(ctx, r.plan.Rule, r.workers)
		if err != nil {
			return err
		}
		r.state = next
	}
	return nil
}
