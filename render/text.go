package render

import (
	"image"
	"unicode/utf8"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/vmath"
)

// atlasFallback replaces code points outside the atlas
const atlasFallback = '?'

// Glyph is one character quad of a text run
type Glyph struct {
	Rune   rune
	Center vmath.Vec3F
	Size   float64
	// Cell is the atlas column and row
	Cell image.Point
}

// MessageOrigin returns the first glyph center for a horizontally centered line at y = 0
func MessageOrigin(text string, size, spacing float64) vmath.Vec3F {
	n := utf8.RuneCountInString(text)
	return vmath.V3F(-float64(n)*(size+spacing)/2, 0, 0)
}

// LayoutText places one glyph per character, advancing size+spacing along x
func LayoutText(text string, origin vmath.Vec3F, size, spacing float64) []Glyph {
	glyphs := make([]Glyph, 0, utf8.RuneCountInString(text))
	advance := size + spacing
	i := 0
	for _, r := range text {
		glyphs = append(glyphs, Glyph{
			Rune:   r,
			Center: vmath.V3F(origin.X+float64(i)*advance, origin.Y, origin.Z),
			Size:   size,
			Cell:   AtlasCell(r),
		})
		i++
	}
	return glyphs
}

// AtlasCell maps a code point to its atlas cell; index = code point, row-major
func AtlasCell(r rune) image.Point {
	n := constants.FontBankSize
	if r < 0 || int(r) >= n*n {
		r = atlasFallback
	}
	return image.Pt(int(r)%n, int(r)/n)
}

// AtlasRect returns the pixel rectangle of a cell in a width x height atlas
func AtlasRect(cell image.Point, width, height int) image.Rectangle {
	n := constants.FontBankSize
	cw, ch := width/n, height/n
	return image.Rect(cell.X*cw, cell.Y*ch, (cell.X+1)*cw, (cell.Y+1)*ch)
}

// AtlasUV returns the normalized texture coordinates of a cell (u, v top-left; w, h extent)
func AtlasUV(cell image.Point) (u, v, w, h float64) {
	n := float64(constants.FontBankSize)
	return float64(cell.X) / n, float64(cell.Y) / n, 1 / n, 1 / n
}
