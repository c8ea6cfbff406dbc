package chart

import (
	"errors"
	"fmt"
	"strings"

	"sankey/internal/model"
	"sankey/internal/render"
)

// Report renders a plain-text summary of the chart. verbose adds the
// geometry and the number of drawing calls a render issues.
func Report(c *Chart, verbose bool) string {
	var b strings.Builder
	d := &c.Diagram
	l := c.Layout

	fmt.Fprintf(&b, "Title:      %s\n", d.Title)
	fmt.Fprintf(&b, "Axis label: %s\n", d.AxisLabel)
	fmt.Fprintf(&b, "Curve:      %s\n\n", c.Curve)

	fmt.Fprintf(&b, "Source bar: y=%.1f height=%.1f colour %s %s\n\n",
		l.SourceY, l.SourceHeight, d.SourceColor(), d.SourceColor().Hex())

	var total float64
	nameWidth := len("Flow")
	for _, f := range d.Flows {
		total += f.Magnitude
		if len(f.Name) > nameWidth {
			nameWidth = len(f.Name)
		}
	}

	fmt.Fprintf(&b, "%3s  %-*s %12s %7s %9s %9s  %s\n", "#", nameWidth, "Flow", "Magnitude", "Share", "Target y", "Height", "Colour")
	for i, f := range d.Flows {
		slot := l.Slots[i]
		share := f.Magnitude / total * 100
		fmt.Fprintf(&b, "%3d. %-*s %12.2f %6.1f%% %9.1f %9.1f  %s %s\n",
			i+1, nameWidth, f.Name, f.Magnitude, share, slot.TargetY, slot.TargetHeight,
			d.FlowColor(i), d.FlowColor(i).Hex())
	}
	fmt.Fprintf(&b, "\nTotal magnitude: %.2f across %d flows\n", total, len(d.Flows))

	if verbose {
		g := c.Geometry
		fmt.Fprintf(&b, "\nCanvas:   %dx%d\n", g.Width, g.Height)
		fmt.Fprintf(&b, "Bars:     source x=%.1f, target x=%.1f, width %.1f, gap %.1f\n", g.SourceX, g.TargetX, g.BarWidth, g.Gap)
		fmt.Fprintf(&b, "Bands:    columns %d..%d (%d per flow)\n", g.BandStart, g.BandEnd, g.BandColumns())

		rec := render.NewRecorder(g.Width, g.Height)
		c.Draw(rec)
		fmt.Fprintf(&b, "Drawing:  %d rects, %d lines, %d labels\n",
			rec.Count(render.OpRect), rec.Count(render.OpLine), rec.Count(render.OpText))
	}

	return b.String()
}

// Describe explains a Build or Load failure the way it is shown to users.
// When path is not empty, errors tied to a line include that line with its
// neighbours.
func Describe(err error, path string) string {
	var fileErr *model.FileError
	if errors.As(err, &fileErr) {
		return fileErr.Error()
	}

	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\n")

	var lineErr model.LineError
	if errors.As(err, &lineErr) {
		if path != "" {
			b.WriteString("\n")
			b.WriteString(model.GetLineContext(path, lineErr.LineNumber()).Format())
		}
		b.WriteString("Content of file is invalid\n")
	}
	return b.String()
}
