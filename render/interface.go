package render

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/rocket-lander/core"
)

// Backend draws a complete frame onto its surface
type Backend interface {
	Draw(f *Frame) error
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Textures resolves texture handles for backends
type Textures interface {
	Image(id core.TextureID) *gg.ImageBuf
	Color(id core.TextureID) (color.NRGBA, bool)
}
