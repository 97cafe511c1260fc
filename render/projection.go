package render

import (
	"image"
	"math"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/vmath"
)

// Projection maps the orthographic world box onto a surface with y pointing down
type Projection struct {
	Left, Right, Bottom, Top float64
	Width, Height            float64
}

// NewProjection maps the playfield onto a width x height surface
func NewProjection(width, height int) Projection {
	return Projection{
		Left:   constants.ProjectionLeft,
		Right:  constants.ProjectionRight,
		Bottom: constants.ProjectionBottom,
		Top:    constants.ProjectionTop,
		Width:  float64(width),
		Height: float64(height),
	}
}

// Point converts world coordinates to surface coordinates
func (p Projection) Point(x, y float64) (float64, float64) {
	sx := (x - p.Left) / (p.Right - p.Left) * p.Width
	sy := (p.Top - y) / (p.Top - p.Bottom) * p.Height
	return sx, sy
}

// Rect projects a centered box
func (p Projection) Rect(center vmath.Vec3F, w, h float64) Rect {
	x0, y0 := p.Point(center.X-w/2, center.Y+h/2)
	x1, y1 := p.Point(center.X+w/2, center.Y-h/2)
	return Rect{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}

// Rect is an axis-aligned surface rectangle, Min is the top-left corner
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Cells returns the grid cells whose centers fall inside r
// A box narrower than one cell still covers the cell containing its center
func (r Rect) Cells() image.Rectangle {
	c := image.Rect(
		int(math.Round(r.MinX)), int(math.Round(r.MinY)),
		int(math.Round(r.MaxX)), int(math.Round(r.MaxY)),
	)
	if c.Dx() == 0 {
		c.Min.X = int(math.Floor((r.MinX + r.MaxX) / 2))
		c.Max.X = c.Min.X + 1
	}
	if c.Dy() == 0 {
		c.Min.Y = int(math.Floor((r.MinY + r.MaxY) / 2))
		c.Max.Y = c.Min.Y + 1
	}
	return c
}
