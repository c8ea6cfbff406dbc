package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sankey/internal/layout"
	"sankey/internal/model"
)

func testDiagram() *model.Diagram {
	return &model.Diagram{
		Title:     "budget",
		AxisLabel: "Income",
		Flows: []model.Flow{
			{Name: "data1", Magnitude: 14},
			{Name: "data2", Magnitude: 123},
			{Name: "data3", Magnitude: 123},
		},
		Colors: []model.Color{
			model.RGB(40, 50, 60),
			model.RGB(255, 0, 0),
			model.RGB(0, 255, 0),
			model.RGB(0, 0, 255),
		},
	}
}

func drawTest(t *testing.T, d *model.Diagram, curve Curve) (*Recorder, layout.Layout) {
	t.Helper()
	g := layout.Reference()
	l, err := layout.Compute(d.Flows, g)
	require.NoError(t, err)

	rec := NewRecorder(g.Width, g.Height)
	New(g, curve).Draw(rec, d, l)
	return rec, l
}

func TestDrawOpCounts(t *testing.T) {
	rec, _ := drawTest(t, testDiagram(), Sine)

	// title, axis label and one label per flow
	assert.Equal(t, 5, rec.Count(OpText))
	// source bar and three targets
	assert.Equal(t, 4, rec.Count(OpRect))
	// outline and fill for each of 741 columns per band
	assert.Equal(t, 3*741*2, rec.Count(OpLine))
}

func TestDrawWithoutTitle(t *testing.T) {
	d := testDiagram()
	d.Title = ""
	rec, _ := drawTest(t, d, Sine)

	texts := rec.Filter(OpText)
	require.Len(t, texts, 4)
	assert.Equal(t, "Income", texts[0].Text)
}

func TestDrawLabels(t *testing.T) {
	rec, l := drawTest(t, testDiagram(), Sine)
	texts := rec.Filter(OpText)

	assert.Equal(t, Op{Kind: OpText, Color: model.Black, X1: 7, Y1: 30, Text: "budget"}, texts[0])
	assert.Equal(t, Op{Kind: OpText, Color: model.Black, X1: 7, Y1: 350, Text: "Income"}, texts[1])

	for i, name := range []string{"data1", "data2", "data3"} {
		slot := l.Slots[i]
		op := texts[i+2]
		assert.Equal(t, name, op.Text)
		assert.Equal(t, 885.0, op.X1)
		assert.InDelta(t, slot.TargetY+slot.TargetHeight/2, op.Y1, 1e-9)
	}
}

func TestDrawBars(t *testing.T) {
	d := testDiagram()
	rec, l := drawTest(t, d, Sine)
	rects := rec.Filter(OpRect)

	assert.Equal(t, Op{Kind: OpRect, Color: d.Colors[0], X1: 100, Y1: 110, X2: 20, Y2: 480}, rects[0])
	for i := range d.Flows {
		slot := l.Slots[i]
		r := rects[i+1]
		assert.Equal(t, d.Colors[i+1], r.Color)
		assert.Equal(t, 860.0, r.X1)
		assert.Equal(t, 20.0, r.X2)
		assert.InDelta(t, slot.TargetY, r.Y1, 1e-9)
		assert.InDelta(t, slot.TargetHeight, r.Y2, 1e-9)
	}
}

func TestDrawBandColumns(t *testing.T) {
	d := testDiagram()
	rec, l := drawTest(t, d, Sine)
	lines := rec.Filter(OpLine)

	// First band, first column: outline then fill in the source colour.
	h := l.Slots[0].TargetHeight
	outline, fill := lines[0], lines[1]

	assert.Equal(t, OutlineColor, outline.Color)
	assert.Equal(t, 120.0, outline.X1)
	assert.Equal(t, 120.0, outline.X2)
	assert.InDelta(t, 110.0, outline.Y1, 1e-9)
	assert.InDelta(t, 110+h+1, outline.Y2, 1e-9)

	assert.Equal(t, d.Colors[0], fill.Color)
	assert.InDelta(t, 111.0, fill.Y1, 1e-9)
	assert.InDelta(t, 110+h, fill.Y2, 1e-9)

	// Last column of the first band ends at the target bar in its colour.
	end := lines[2*741-1]
	assert.Equal(t, 860.0, end.X1)
	assert.Equal(t, d.Colors[1], end.Color)
	assert.InDelta(t, l.Slots[0].TargetY+1, end.Y1, 1e-9)

	// Columns advance one pixel at a time.
	for i := 0; i < 741; i++ {
		require.Equal(t, float64(120+i), lines[2*i].X1)
		require.Equal(t, OutlineColor, lines[2*i].Color)
	}
}

func TestDrawLinearBandMidpoint(t *testing.T) {
	d := testDiagram()
	rec, l := drawTest(t, d, Linear)
	lines := rec.Filter(OpLine)

	// second band, column x=490 (t=0.5)
	slot := l.Slots[1]
	mid := lines[2*741+2*370]
	assert.Equal(t, 490.0, mid.X1)
	assert.InDelta(t, (slot.SourceSegmentY+slot.TargetY)/2, mid.Y1, 1e-9)
}

func TestDrawDoesNotModifyDiagram(t *testing.T) {
	d := testDiagram()
	drawTest(t, d, Sine)
	assert.Equal(t, testDiagram(), d)
}

func TestRendererIsReusable(t *testing.T) {
	g := layout.Reference()
	r := New(g, Sine)
	d := testDiagram()
	l, err := layout.Compute(d.Flows, g)
	require.NoError(t, err)

	a := NewRecorder(g.Width, g.Height)
	b := NewRecorder(g.Width, g.Height)
	r.Draw(a, d, l)
	r.Draw(b, d, l)
	assert.Equal(t, a.Ops, b.Ops)
}

func TestBandUsesSourceAndTargetColours(t *testing.T) {
	d := testDiagram()
	g := layout.Reference()
	l, err := layout.Compute(d.Flows, g)
	require.NoError(t, err)

	b := New(g, Sine).Band(d, l, 2)
	assert.Equal(t, 120, b.Start)
	assert.Equal(t, 860, b.End)
	assert.Equal(t, d.Colors[0], b.From)
	assert.Equal(t, d.Colors[3], b.To)
	assert.Equal(t, l.Slots[2].SourceSegmentY, b.SourceY)
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "rect", OpRect.String())
	assert.Equal(t, "line", OpLine.String())
	assert.Equal(t, "text", OpText.String())
	assert.Equal(t, "unknown", OpKind(9).String())
}
