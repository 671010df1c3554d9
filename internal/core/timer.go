package core

import "time"

// FixedStep paces simulation steps at a steady ticks-per-second rate,
// independent of how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// NewFixedStepWithClock is NewFixedStep reading time from now.
func NewFixedStepWithClock(tps int, now func() time.Time) *FixedStep {
	fs := NewFixedStep(tps)
	fs.now = now
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current tick rate.
func (f *FixedStep) TPS() int {
	return int(time.Second / f.step)
}

// Reset drops any banked time so the next poll starts a fresh interval.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due reports how many ticks have elapsed since the previous poll, capped at
// max so a stalled caller does not spiral.
func (f *FixedStep) Due(max int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < max {
		f.accumulator -= f.step
		n++
	}
	if f.accumulator >= f.step {
		f.accumulator %= f.step
	}
	return n
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Due(1) == 1
}
