package renderers

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/render"
)

// Screen is the subset of tcell.Screen the terminal backend draws through
type Screen interface {
	Size() (width, height int)
	Fill(rune, tcell.Style)
	SetContent(x int, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Fallback cell colours when a texture handle has no colour
var (
	fallbackPlayer    = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	fallbackSafe      = color.NRGBA{R: 60, G: 160, B: 80, A: 255}
	fallbackDangerous = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
)

// TerminalRenderer rasterizes frames onto terminal cells
// Each quad fills the cells it covers with its texture's average colour
type TerminalRenderer struct {
	screen   Screen
	textures render.Textures
	clear    tcell.Style
	text     tcell.Style
	visible  bool
}

// NewTerminalRenderer creates a terminal backend; textures may be nil
func NewTerminalRenderer(screen Screen, textures render.Textures) *TerminalRenderer {
	bg := toTcell(clearColor())
	return &TerminalRenderer{
		screen:   screen,
		textures: textures,
		clear:    tcell.StyleDefault.Background(bg),
		text:     tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack).Bold(true),
		visible:  true,
	}
}

// IsVisible implements render.VisibilityToggle
func (r *TerminalRenderer) IsVisible() bool { return r.visible }

// SetVisible enables or disables drawing
func (r *TerminalRenderer) SetVisible(v bool) { r.visible = v }

// Draw implements render.Backend
func (r *TerminalRenderer) Draw(f *render.Frame) error {
	w, h := r.screen.Size()
	r.screen.Fill(' ', r.clear)
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return nil
	}
	proj := render.NewProjection(w, h)

	// Reverse order so the player, drawn first in world order, stays on top
	for i := len(f.Quads) - 1; i >= 0; i-- {
		q := &f.Quads[i]
		style := tcell.StyleDefault.Background(toTcell(r.quadColor(q)))
		cells := proj.Rect(q.Center, q.Width, q.Height).Cells()
		for y := max(cells.Min.Y, 0); y < min(cells.Max.Y, h); y++ {
			for x := max(cells.Min.X, 0); x < min(cells.Max.X, w); x++ {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}

	for _, g := range f.Glyphs {
		sx, sy := proj.Point(g.Center.X, g.Center.Y)
		x, y := int(sx), int(sy)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		r.screen.SetContent(x, y, g.Rune, nil, r.text)
	}

	r.screen.Show()
	return nil
}

func (r *TerminalRenderer) quadColor(q *render.Quad) color.NRGBA {
	if r.textures != nil && q.Texture != 0 {
		if c, ok := r.textures.Color(q.Texture); ok {
			return c
		}
	}
	return fallbackColor(q.Type)
}

func fallbackColor(t core.EntityType) color.NRGBA {
	switch t {
	case core.EntityPlayer:
		return fallbackPlayer
	case core.EntityDangerousZone:
		return fallbackDangerous
	default:
		return fallbackSafe
	}
}

func clearColor() color.NRGBA {
	return color.NRGBA{
		R: channel(constants.ClearRed),
		G: channel(constants.ClearGreen),
		B: channel(constants.ClearBlue),
		A: channel(constants.ClearAlpha),
	}
}

// channel maps a [0, 1] intensity to the nearest 8-bit value
func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
