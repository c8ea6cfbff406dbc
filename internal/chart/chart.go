// Package chart runs the whole pipeline from a document to drawn pixels:
// records are parsed, colours resolved, bars laid out and finally rendered.
package chart

import (
	"fmt"
	"io"

	"sankey/internal/canvas"
	"sankey/internal/config"
	"sankey/internal/layout"
	"sankey/internal/logging"
	"sankey/internal/model"
	"sankey/internal/palette"
	"sankey/internal/record"
	"sankey/internal/render"
)

// Options controls how a chart is built.
type Options struct {
	Geometry layout.Geometry
	Curve    render.Curve
	Palette  model.Palette
	FontSize float64
}

// DefaultOptions returns the reference canvas with the sine curve and the
// built-in palette.
func DefaultOptions() Options {
	return Options{
		Geometry: layout.Reference(),
		Curve:    render.Sine,
		Palette:  model.DefaultPalette(),
		FontSize: 14,
	}
}

// OptionsFromConfig derives Options from a validated Config.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	p, err := cfg.ColorPalette()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Geometry: cfg.Geometry(),
		Curve:    cfg.Curve,
		Palette:  p,
		FontSize: cfg.FontSize,
	}, nil
}

// Chart is a validated diagram together with its layout.
type Chart struct {
	Diagram  model.Diagram   `json:"diagram"`
	Layout   layout.Layout   `json:"layout"`
	Geometry layout.Geometry `json:"geometry"`
	Curve    render.Curve    `json:"curve"`

	fontSize float64
}

// Build validates doc and lays it out. The first failing stage ends the
// build; nothing is drawn for an invalid document.
func Build(doc model.Document, opts Options) (*Chart, error) {
	log := logging.Logger()

	flows, err := record.NewParser().Parse(doc.Records)
	if err != nil {
		return nil, err
	}

	colors := palette.NewResolver(opts.Palette).Resolve(doc.ColorLines())

	d := model.Diagram{
		Title:     doc.Title,
		AxisLabel: doc.AxisLabel(),
		Flows:     flows.Flows(),
		Colors:    colors,
	}

	l, err := layout.Compute(d.Flows, opts.Geometry)
	if err != nil {
		return nil, err
	}

	log.Debug("chart built", "title", d.Title, "flows", len(d.Flows), "total_height", l.TotalHeight)

	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = DefaultOptions().FontSize
	}

	return &Chart{
		Diagram:  d,
		Layout:   l,
		Geometry: opts.Geometry,
		Curve:    opts.Curve,
		fontSize: fontSize,
	}, nil
}

// Load reads path and builds it.
func Load(path string, opts Options) (*Chart, error) {
	doc, err := model.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return Build(doc, opts)
}

// WithCurve returns a copy of c drawn with curve.
func (c *Chart) WithCurve(curve render.Curve) *Chart {
	cp := *c
	cp.Curve = curve
	return &cp
}

// Draw renders the chart onto cv.
func (c *Chart) Draw(cv render.Canvas) {
	render.New(c.Geometry, c.Curve).Draw(cv, &c.Diagram, c.Layout)
}

// Raster draws the chart into a new raster canvas. The caller closes it.
func (c *Chart) Raster() (*canvas.Raster, error) {
	r, err := canvas.NewRaster(c.Geometry.Width, c.Geometry.Height, c.fontSize)
	if err != nil {
		return nil, err
	}
	c.Draw(r)
	if err := r.Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("draw chart: %w", err)
	}
	return r, nil
}

// RenderPNG draws the chart and writes it to w as PNG.
func (c *Chart) RenderPNG(w io.Writer) error {
	r, err := c.Raster()
	if err != nil {
		return err
	}
	defer r.Close()
	return r.EncodePNG(w)
}

// RenderSVG draws the chart and writes it to w as SVG.
func (c *Chart) RenderSVG(w io.Writer) error {
	v := canvas.NewVector(w, c.Geometry.Width, c.Geometry.Height, c.fontSize)
	c.Draw(v)
	return v.Close()
}
