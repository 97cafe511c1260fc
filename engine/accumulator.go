package engine

import "time"

// Accumulator converts variable wall-clock deltas into whole fixed steps
// Integer durations keep the count exact: steps == floor(total elapsed / step)
type Accumulator struct {
	step     time.Duration
	residual time.Duration
}

// NewAccumulator creates an accumulator for the given fixed step
func NewAccumulator(step time.Duration) *Accumulator {
	if step <= 0 {
		panic("engine: accumulator step must be positive")
	}
	return &Accumulator{step: step}
}

// Advance adds elapsed time and returns how many fixed steps are now due
// The remainder carries to the next call and stays within [0, step)
func (a *Accumulator) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	total := a.residual + elapsed
	n := total / a.step
	a.residual = total - n*a.step
	return int(n)
}

// Residual returns the carried-over time not yet consumed by a step
func (a *Accumulator) Residual() time.Duration {
	return a.residual
}

// Step returns the fixed step duration
func (a *Accumulator) Step() time.Duration {
	return a.step
}
