package physics

import (
	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/vmath"
)

// Step advances e by dt seconds and resolves collisions against others
// Order: v += a*dt; x += vx*dt then horizontal resolution; y += vy*dt then vertical resolution
// Returns the first contact of the step, horizontal before vertical
func Step(e *core.Entity, dt float64, others []core.Entity) (Contact, bool) {
	e.Velocity = vmath.V3FAdd(e.Velocity, vmath.V3FScale(e.Acceleration, dt))

	e.Position.X += e.Velocity.X * dt
	cx, hitX := resolveX(e, others)

	e.Position.Y += e.Velocity.Y * dt
	cy, hitY := resolveY(e, others)

	switch {
	case hitX:
		return cx, true
	case hitY:
		return cy, true
	default:
		return Contact{}, false
	}
}
