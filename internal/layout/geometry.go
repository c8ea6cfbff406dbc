// Package layout computes bar positions for a single-source diagram.
package layout

// Reference canvas dimensions. All other constants are expressed against it.
const (
	ReferenceWidth  = 1000
	ReferenceHeight = 700
)

// Geometry holds the fixed placement constants of a canvas.
type Geometry struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	UsableHeight float64 `json:"usable_height"` // vertical space shared by all target bars and gaps
	Gap          float64 `json:"gap"`           // space between consecutive target bars
	TargetTop    float64 `json:"target_top"`    // y of the first target bar

	SourceX   float64 `json:"source_x"`
	TargetX   float64 `json:"target_x"`
	BarWidth  float64 `json:"bar_width"`
	BandStart int     `json:"band_start"` // first band column, the source bar's right edge
	BandEnd   int     `json:"band_end"`   // last band column, the target bar's left edge

	LabelX     float64 `json:"label_x"`
	AxisLabelX float64 `json:"axis_label_x"`
	TitleY     float64 `json:"title_y"`
}

// Reference returns the geometry of the 1000x700 reference canvas.
func Reference() Geometry {
	return Geometry{
		Width:        ReferenceWidth,
		Height:       ReferenceHeight,
		UsableHeight: 500,
		Gap:          10,
		TargetTop:    100,
		SourceX:      100,
		TargetX:      860,
		BarWidth:     20,
		BandStart:    120,
		BandEnd:      860,
		LabelX:       885,
		AxisLabelX:   7,
		TitleY:       30,
	}
}

// ForCanvas scales the reference geometry to a width x height canvas.
// Horizontal constants scale with width and vertical ones with height; the
// gap between target bars stays constant.
func ForCanvas(width, height int) Geometry {
	g := Reference()
	if width == ReferenceWidth && height == ReferenceHeight {
		return g
	}
	sx := float64(width) / ReferenceWidth
	sy := float64(height) / ReferenceHeight

	g.Width = width
	g.Height = height
	g.UsableHeight *= sy
	g.TargetTop *= sy
	g.TitleY *= sy
	g.SourceX *= sx
	g.TargetX *= sx
	g.BarWidth *= sx
	g.LabelX *= sx
	g.AxisLabelX *= sx
	g.BandStart = int(g.SourceX + g.BarWidth)
	g.BandEnd = int(g.TargetX)
	return g
}

// BandColumns returns the number of 1px columns a band spans.
func (g Geometry) BandColumns() int {
	return g.BandEnd - g.BandStart + 1
}
