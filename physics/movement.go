package physics

import (
	"math"

	"github.com/lixenwraith/rocket-lander/vmath"
)

// ApplyFriction reduces |vx| by friction without crossing zero
// Magnitudes below threshold snap to exactly zero
func ApplyFriction(vx, friction, threshold float64) float64 {
	v := vmath.ApproachZero(vx, friction)
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}
