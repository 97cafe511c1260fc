package core

import (
	"github.com/lixenwraith/rocket-lander/vmath"
)

// EntityType tags the role of a simulated object
type EntityType uint8

const (
	EntityPlayer EntityType = iota
	EntitySafeZone
	EntityDangerousZone
)

func (t EntityType) String() string {
	switch t {
	case EntityPlayer:
		return "player"
	case EntitySafeZone:
		return "safe_zone"
	case EntityDangerousZone:
		return "dangerous_zone"
	default:
		return "unknown"
	}
}

// IsPlatform reports whether the type is one of the static platform kinds
func (t EntityType) IsPlatform() bool {
	return t == EntitySafeZone || t == EntityDangerousZone
}

// TextureID is an opaque handle into the presentation layer's texture store
// Zero means no texture
type TextureID uint32

// Entity is the single simulated-object type; variants differ only by Type
type Entity struct {
	// Position is the box center in world units
	Position vmath.Vec3F
	// Velocity in units per second
	Velocity vmath.Vec3F
	// Acceleration in units per second squared
	Acceleration vmath.Vec3F

	// Width and Height are full extents; collision uses half of each
	Width, Height float64

	Type    EntityType
	Texture TextureID
}

// Bounds returns the entity's axis-aligned box at its current position
func (e *Entity) Bounds() vmath.AABB {
	return vmath.NewAABB(e.Position, e.Width, e.Height)
}
