package renderers

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/render"
)

// ImageRenderer draws frames offscreen with gg's software rasterizer
type ImageRenderer struct {
	dc       *gg.Context
	textures render.Textures
	proj     render.Projection
	width    int
	height   int
}

// NewImageRenderer creates an offscreen backend of the given pixel size
func NewImageRenderer(width, height int, textures render.Textures) *ImageRenderer {
	return &ImageRenderer{
		dc:       gg.NewContext(width, height),
		textures: textures,
		proj:     render.NewProjection(width, height),
		width:    width,
		height:   height,
	}
}

// Draw implements render.Backend
func (r *ImageRenderer) Draw(f *render.Frame) error {
	r.dc.ClearWithColor(gg.RGBA{
		R: constants.ClearRed,
		G: constants.ClearGreen,
		B: constants.ClearBlue,
		A: constants.ClearAlpha,
	})

	// Reverse order so the player ends up on top
	for i := len(f.Quads) - 1; i >= 0; i-- {
		q := &f.Quads[i]
		rect := r.proj.Rect(q.Center, q.Width, q.Height)

		var img *gg.ImageBuf
		if r.textures != nil {
			img = r.textures.Image(q.Texture)
		}
		if img == nil {
			if err := r.fillRect(rect, q); err != nil {
				return err
			}
			continue
		}
		r.dc.DrawImageEx(img, gg.DrawImageOptions{
			X:             rect.MinX,
			Y:             rect.MinY,
			DstWidth:      rect.Width(),
			DstHeight:     rect.Height(),
			Interpolation: gg.InterpNearest,
		})
	}

	if len(f.Glyphs) == 0 || r.textures == nil {
		return nil
	}
	atlas := r.textures.Image(f.Font)
	if atlas == nil {
		return nil
	}
	for _, g := range f.Glyphs {
		src := render.AtlasRect(g.Cell, atlas.Width(), atlas.Height())
		rect := r.proj.Rect(g.Center, g.Size, g.Size)
		r.dc.DrawImageEx(atlas, gg.DrawImageOptions{
			X:             rect.MinX,
			Y:             rect.MinY,
			DstWidth:      rect.Width(),
			DstHeight:     rect.Height(),
			SrcRect:       &src,
			Interpolation: gg.InterpNearest,
		})
	}
	return nil
}

func (r *ImageRenderer) fillRect(rect render.Rect, q *render.Quad) error {
	c := fallbackColor(q.Type)
	r.dc.SetRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	r.dc.DrawRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	if err := r.dc.Fill(); err != nil {
		return fmt.Errorf("fill quad: %w", err)
	}
	return nil
}

// Image returns the last drawn frame
func (r *ImageRenderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the last drawn frame
func (r *ImageRenderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

// Size returns the surface dimensions in pixels
func (r *ImageRenderer) Size() (int, int) {
	return r.width, r.height
}

// Close releases the drawing context
func (r *ImageRenderer) Close() error {
	return r.dc.Close()
}
