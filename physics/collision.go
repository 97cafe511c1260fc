package physics

import (
	"github.com/lixenwraith/rocket-lander/core"
)

// Axis identifies the resolution pass that produced a contact
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Contact describes the first overlapping entity found during a resolution pass
type Contact struct {
	// Index of the obstacle within the candidate slice
	Index int
	// Type of the obstacle
	Type core.EntityType
	Axis Axis
}

// Collides reports strict AABB overlap on both axes, symmetric in its arguments
func Collides(a, b *core.Entity) bool {
	return a.Bounds().Overlaps(b.Bounds())
}

// FirstOverlap returns the index of the first entity in others overlapping e, or -1
func FirstOverlap(e *core.Entity, others []core.Entity) int {
	for i := range others {
		o := &others[i]
		if o == e {
			continue
		}
		if Collides(e, o) {
			return i
		}
	}
	return -1
}

// resolveX pushes e flush against the first overlapping obstacle, opposite to velocity.X
// Only velocity.X is zeroed; a stationary axis is reported but not moved
func resolveX(e *core.Entity, others []core.Entity) (Contact, bool) {
	i := FirstOverlap(e, others)
	if i < 0 {
		return Contact{}, false
	}
	o := &others[i]

	if e.Velocity.X != 0 {
		e.Position.X = e.Bounds().FlushX(o.Bounds(), e.Velocity.X)
		e.Velocity.X = 0
	}
	return Contact{Index: i, Type: o.Type, Axis: AxisX}, true
}

// resolveY pushes e flush against the first overlapping obstacle, opposite to velocity.Y
// Only velocity.Y is zeroed; a stationary axis is reported but not moved
func resolveY(e *core.Entity, others []core.Entity) (Contact, bool) {
	i := FirstOverlap(e, others)
	if i < 0 {
		return Contact{}, false
	}
	o := &others[i]

	if e.Velocity.Y != 0 {
		e.Position.Y = e.Bounds().FlushY(o.Bounds(), e.Velocity.Y)
		e.Velocity.Y = 0
	}
	return Contact{Index: i, Type: o.Type, Axis: AxisY}, true
}
