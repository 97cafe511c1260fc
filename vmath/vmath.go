// Package vmath provides the small float vector and box toolkit used by the simulation.
package vmath

import "math"

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// ApproachZero reduces |v| by amount without crossing zero
func ApproachZero(v, amount float64) float64 {
	if math.Abs(v) <= amount {
		return 0
	}
	return v - amount*Sign(v)
}
