// Package render draws a laid-out diagram onto a Canvas.
package render

import "sankey/internal/model"

// Canvas is the drawing surface a diagram is rendered onto. Implementations
// are write-only from the renderer's point of view.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (width, height int)
	// SetFill sets the colour used by FillRect.
	SetFill(c model.Color)
	// FillRect draws a filled rectangle.
	FillRect(x, y, w, h float64)
	// SetStroke sets the colour used by Line and Text.
	SetStroke(c model.Color)
	// Line draws a 1px line.
	Line(x1, y1, x2, y2 float64)
	// Text draws s with its left edge at x, vertically centred on y.
	Text(x, y float64, s string)
}
