package constants

// Text rendering
const (
	// FontBankSize is the glyph atlas dimension in cells (16x16 = 256 glyphs)
	FontBankSize = 16

	// MessageFontSize is the glyph quad size in world units
	MessageFontSize = 0.4

	// MessageSpacing is the extra advance between glyphs in world units
	MessageSpacing = 0.05
)

// Background clear colour (RGBA 0-1)
const (
	ClearRed   = 1.0
	ClearGreen = 0.75
	ClearBlue  = 0.8
	ClearAlpha = 1.0
)
