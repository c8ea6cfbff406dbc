package canvas

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"sankey/internal/model"
	"sankey/internal/render"
)

var _ render.Canvas = (*Vector)(nil)

// Vector writes drawing calls as SVG elements. svgo works in whole units, so
// coordinates are rounded to the nearest pixel.
type Vector struct {
	doc           *svg.SVG
	width, height int
	fontSize      float64
	fill, stroke  model.Color
	closed        bool
}

// NewVector starts an SVG document of the given size on w with a white
// background.
func NewVector(w io.Writer, width, height int, fontSize float64) *Vector {
	doc := svg.New(w)
	doc.Start(width, height)
	doc.Rect(0, 0, width, height, "fill:"+model.White.Hex())
	doc.Gstyle("shape-rendering:crispEdges")
	return &Vector{doc: doc, width: width, height: height, fontSize: fontSize, stroke: model.Black}
}

func (v *Vector) Size() (int, int) {
	return v.width, v.height
}

func (v *Vector) SetFill(c model.Color) {
	v.fill = c
}

func (v *Vector) SetStroke(c model.Color) {
	v.stroke = c
}

func (v *Vector) FillRect(x, y, w, h float64) {
	v.doc.Rect(px(x), px(y), px(w), px(h), "fill:"+v.fill.Hex())
}

func (v *Vector) Line(x1, y1, x2, y2 float64) {
	v.doc.Line(px(x1), px(y1), px(x2), px(y2), "stroke-width:1;stroke:"+v.stroke.Hex())
}

func (v *Vector) Text(x, y float64, s string) {
	style := fmt.Sprintf("font-family:Go,sans-serif;font-size:%gpx;dominant-baseline:middle;fill:%s", v.fontSize, v.stroke.Hex())
	v.doc.Text(px(x), px(y), s, style)
}

// Close ends the SVG document. Further drawing is invalid.
func (v *Vector) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.doc.Gend()
	v.doc.End()
	return nil
}

func px(f float64) int {
	return int(math.Round(f))
}
