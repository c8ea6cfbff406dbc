package render

import (
	"sankey/internal/layout"
	"sankey/internal/model"
)

// OutlineColor is drawn one pixel above and below every band.
var OutlineColor = model.Black

// Renderer draws diagrams for one geometry and curve shape. It holds no
// per-diagram state, so one Renderer can draw any number of diagrams.
type Renderer struct {
	geometry layout.Geometry
	curve    Curve
}

// New creates a Renderer.
func New(g layout.Geometry, curve Curve) *Renderer {
	return &Renderer{geometry: g, curve: curve}
}

// Draw renders d, placed by l, onto c. d is only read.
func (r *Renderer) Draw(c Canvas, d *model.Diagram, l layout.Layout) {
	g := r.geometry

	c.SetStroke(model.Black)
	if d.Title != "" {
		c.Text(g.AxisLabelX, g.TitleY, d.Title)
	}
	c.Text(g.AxisLabelX, float64(g.Height)/2, d.AxisLabel)

	c.SetFill(d.SourceColor())
	c.FillRect(g.SourceX, l.SourceY, g.BarWidth, l.SourceHeight)

	for i, flow := range d.Flows {
		slot := l.Slots[i]

		c.SetStroke(model.Black)
		c.Text(g.LabelX, slot.TargetY+slot.TargetHeight/2, flow.Name)

		c.SetFill(d.FlowColor(i))
		c.FillRect(g.TargetX, slot.TargetY, g.BarWidth, slot.TargetHeight)

		r.drawBand(c, r.Band(d, l, i))
	}
}

// Band returns the ribbon for flow i.
func (r *Renderer) Band(d *model.Diagram, l layout.Layout, i int) Band {
	slot := l.Slots[i]
	return Band{
		Start:   r.geometry.BandStart,
		End:     r.geometry.BandEnd,
		SourceY: slot.SourceSegmentY,
		TargetY: slot.TargetY,
		Height:  slot.TargetHeight,
		From:    d.SourceColor(),
		To:      d.FlowColor(i),
	}
}

// drawBand draws each column as a dark line with the interpolated colour
// drawn over all but its first and last pixel.
func (r *Renderer) drawBand(c Canvas, b Band) {
	for x := b.Start; x <= b.End; x++ {
		s := StripAt(x, b, r.curve)
		fx := float64(x)

		c.SetStroke(OutlineColor)
		c.Line(fx, s.Y, fx, s.Y+s.Height+1)

		c.SetStroke(s.Color)
		c.Line(fx, s.Y+1, fx, s.Y+s.Height)
	}
}
