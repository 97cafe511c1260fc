package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3FOps(t *testing.T) {
	a := V3F(1, 2, 3)
	b := V3F(0.5, -1, 0)

	assert.Equal(t, V3F(1.5, 1, 3), V3FAdd(a, b))
	assert.Equal(t, V3F(2, 4, 6), V3FScale(a, 2))
}

func TestAABBOverlap(t *testing.T) {
	unit := NewAABB(V3F(0, 0, 0), 1, 1)

	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"Same box", NewAABB(V3F(0, 0, 0), 1, 1), true},
		{"Partial overlap", NewAABB(V3F(0.9, 0.9, 0), 1, 1), true},
		{"Touching right edge", NewAABB(V3F(1, 0, 0), 1, 1), false},
		{"Touching top edge", NewAABB(V3F(0, 1, 0), 1, 1), false},
		{"Overlap on X only", NewAABB(V3F(0.2, 3, 0), 1, 1), false},
		{"Overlap on Y only", NewAABB(V3F(3, 0.2, 0), 1, 1), false},
		{"Narrow inside", NewAABB(V3F(0.5, -0.5, 0), 0.3, 0.3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unit.Overlaps(tt.other))
			// Overlap must be symmetric
			assert.Equal(t, tt.want, tt.other.Overlaps(unit))
		})
	}
}

func TestAABBFlush(t *testing.T) {
	mover := NewAABB(V3F(0.8, 0.8, 0), 1, 1)
	wall := NewAABB(V3F(1.5, 0, 0), 1, 1)

	assert.Equal(t, 0.5, mover.FlushX(wall, 1))
	assert.Equal(t, 2.5, mover.FlushX(wall, -1))
	assert.Equal(t, -1.0, mover.FlushY(wall, 1))
	assert.Equal(t, 1.0, mover.FlushY(wall, -1))

	mover.CenterX = mover.FlushX(wall, 1)
	assert.False(t, mover.Overlaps(wall))
}

func TestApproachZero(t *testing.T) {
	tests := []struct {
		name           string
		v, amount, out float64
	}{
		{"Positive reduces", 2, 0.5, 1.5},
		{"Negative reduces", -2, 0.5, -1.5},
		{"Clamps at zero from positive", 0.3, 0.5, 0},
		{"Clamps at zero from negative", -0.3, 0.5, 0},
		{"Zero stays zero", 0, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, ApproachZero(tt.v, tt.amount))
		})
	}
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, -1.0, Sign(-3))
}
