package input

import (
	"time"
)

// DefaultHoldWindow is how long a key counts as held after its last press or repeat
// Terminals report presses and auto-repeats, never releases
const DefaultHoldWindow = 150 * time.Millisecond

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// KeyTracker emulates held-key state from discrete press events
type KeyTracker struct {
	clock Clock
	hold  time.Duration

	leftUntil  time.Time
	rightUntil time.Time
	quit       bool
}

// NewKeyTracker creates a tracker; hold <= 0 selects DefaultHoldWindow
func NewKeyTracker(clock Clock, hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyTracker{clock: clock, hold: hold}
}

// Press records an action at the current time
// Pressing one direction releases the other
func (kt *KeyTracker) Press(a Action) {
	now := kt.clock.Now()
	switch a {
	case ActionLeft:
		kt.leftUntil = now.Add(kt.hold)
		kt.rightUntil = time.Time{}
	case ActionRight:
		kt.rightUntil = now.Add(kt.hold)
		kt.leftUntil = time.Time{}
	case ActionQuit:
		kt.quit = true
	}
}

// Controls returns the held state as of now
func (kt *KeyTracker) Controls() Controls {
	now := kt.clock.Now()
	return Controls{
		Left:  now.Before(kt.leftUntil),
		Right: now.Before(kt.rightUntil),
		Quit:  kt.quit,
	}
}
