// Package canvas provides the drawing surfaces diagrams are rendered onto:
// a raster surface backed by gg and a vector surface emitting SVG.
package canvas

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"sankey/internal/model"
	"sankey/internal/render"
)

var _ render.Canvas = (*Raster)(nil)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// labelFont returns the shared Go Regular font source. Faces are cheap and
// created per canvas; the parsed font is loaded once.
func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Raster draws into an in-memory image with anti-aliased shapes.
type Raster struct {
	dc           *gg.Context
	fill, stroke model.Color
	err          error
}

// NewRaster creates a white width x height raster with labels set in Go
// Regular at fontSize points.
func NewRaster(width, height int, fontSize float64) (*Raster, error) {
	source, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	dc.SetFont(source.Face(fontSize))
	dc.SetLineWidth(1)

	return &Raster{dc: dc, stroke: model.Black}, nil
}

func (r *Raster) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

func (r *Raster) SetFill(c model.Color) {
	r.fill = c
}

func (r *Raster) SetStroke(c model.Color) {
	r.stroke = c
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.SetColor(r.fill)
	r.dc.DrawRectangle(x, y, w, h)
	r.keep(r.dc.Fill())
}

// Line strokes a 1px line. x is shifted by half a pixel so that a vertical
// line at integer x covers exactly one pixel column.
func (r *Raster) Line(x1, y1, x2, y2 float64) {
	r.dc.SetColor(r.stroke)
	r.dc.DrawLine(x1+0.5, y1, x2+0.5, y2)
	r.keep(r.dc.Stroke())
}

func (r *Raster) Text(x, y float64, s string) {
	r.dc.SetColor(r.stroke)
	r.dc.DrawStringAnchored(s, x, y, 0, 0.5)
}

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first drawing error, if any.
func (r *Raster) Err() error {
	return r.err
}

// Image returns a snapshot of the pixels drawn so far.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the raster as PNG. A drawing error recorded earlier is
// returned instead.
func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return fmt.Errorf("draw: %w", r.err)
	}
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
