// Package asset loads the textures the presentation layer draws entities with.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/rocket-lander/core"
)

// ErrTexture wraps every texture load failure
var ErrTexture = errors.New("texture load failed")

// Texture is a decoded image plus the derived data each backend needs
type Texture struct {
	ID   core.TextureID
	Path string

	// Image is the pixel buffer used by the offscreen renderer
	Image         *gg.ImageBuf
	Width, Height int

	// Average is the mean colour, used where a texture covers a single terminal cell
	Average color.NRGBA

	// Checksum is the xxhash of the encoded file
	Checksum uint64
}

// LoadTexture reads and decodes an image file (PNG, JPEG, WebP)
func LoadTexture(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrTexture, path, err)
	}
	return DecodeTexture(path, data)
}

// DecodeTexture decodes an in-memory image; path is kept for diagnostics
func DecodeTexture(path string, data []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrTexture, path, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w %q: empty image", ErrTexture, path)
	}

	return &Texture{
		Path:     path,
		Image:    gg.ImageBufFromImage(img),
		Width:    b.Dx(),
		Height:   b.Dy(),
		Average:  AverageColor(img),
		Checksum: xxhash.Sum64(data),
	}, nil
}

// AverageColor downsamples img to a single pixel and returns it unpremultiplied
func AverageColor(img image.Image) color.NRGBA {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return color.NRGBAModel.Convert(dst.At(0, 0)).(color.NRGBA)
}
