package model

// Centralized glyphs for the terminal preview
// Using simple single-width characters for consistent terminal rendering
const (
	GlyphHalfBlock = "▀" // Upper half block: foreground is top pixel, background bottom
	GlyphSwatch    = "■" // Colour swatch in the flow list
	GlyphSelected  = "›" // Cursor
	GlyphSource    = "◆" // Source bar row
	GlyphError     = "✗" // Failed load
)
