package render

import (
	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/engine"
	"github.com/lixenwraith/rocket-lander/vmath"
)

// Quad is one textured box, centered at Center
type Quad struct {
	Center        vmath.Vec3F
	Width, Height float64
	Texture       core.TextureID
	Type          core.EntityType
}

// Frame is a backend-independent description of what to draw
// Quads are in draw order: player first, then platforms by index
type Frame struct {
	Quads   []Quad
	Glyphs  []Glyph
	Font    core.TextureID
	Message string
	Phase   engine.Phase
}

// BuildFrame snapshots the session into f, reusing its slices
func BuildFrame(f *Frame, s *engine.Session, font core.TextureID) {
	f.Quads = f.Quads[:0]
	f.Glyphs = f.Glyphs[:0]
	f.Font = font
	f.Message = s.Message
	f.Phase = s.Phase()

	f.Quads = append(f.Quads, quadOf(&s.Player))
	for i := range s.Platforms {
		f.Quads = append(f.Quads, quadOf(&s.Platforms[i]))
	}

	if s.Message != "" {
		origin := MessageOrigin(s.Message, constants.MessageFontSize, constants.MessageSpacing)
		f.Glyphs = append(f.Glyphs, LayoutText(s.Message, origin, constants.MessageFontSize, constants.MessageSpacing)...)
	}
}

func quadOf(e *core.Entity) Quad {
	return Quad{
		Center:  e.Position,
		Width:   e.Width,
		Height:  e.Height,
		Texture: e.Texture,
		Type:    e.Type,
	}
}
