package core

import "time"

// FixedStep paces generation reveals at a steady rows-per-second rate,
// independent of how often the caller polls it.
type FixedStep struct {
	clock       Clock
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting rate steps per second. The
// first call to Steps always reports at least one step.
func NewFixedStep(rate int, clock Clock) *FixedStep {
	if clock == nil {
		clock = SystemClock
	}
	fs := &FixedStep{clock: clock}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Steps reports how many whole steps have elapsed since the previous call.
func (f *FixedStep) Steps() int {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}
