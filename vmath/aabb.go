package vmath

import "math"

// AABB is an axis-aligned box described by its center and half-extents
type AABB struct {
	CenterX, CenterY float64
	HalfW, HalfH     float64
}

// NewAABB builds a box from a center position and full extents
func NewAABB(center Vec3F, width, height float64) AABB {
	return AABB{
		CenterX: center.X,
		CenterY: center.Y,
		HalfW:   width / 2,
		HalfH:   height / 2,
	}
}

// Overlaps reports strict overlap on both axes; touching edges do not overlap
func (a AABB) Overlaps(b AABB) bool {
	return math.Abs(a.CenterX-b.CenterX) < a.HalfW+b.HalfW &&
		math.Abs(a.CenterY-b.CenterY) < a.HalfH+b.HalfH
}

// FlushX returns the center X that places a exactly against b on the side given by dir
// dir > 0 means a approaches from the left (ends up left of b)
func (a AABB) FlushX(b AABB, dir float64) float64 {
	if dir > 0 {
		return b.CenterX - (a.HalfW + b.HalfW)
	}
	return b.CenterX + (a.HalfW + b.HalfW)
}

// FlushY returns the center Y that places a exactly against b on the side given by dir
// dir > 0 means a approaches from below (ends up under b)
func (a AABB) FlushY(b AABB, dir float64) float64 {
	if dir > 0 {
		return b.CenterY - (a.HalfH + b.HalfH)
	}
	return b.CenterY + (a.HalfH + b.HalfH)
}
