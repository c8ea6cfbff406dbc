package render

import "sankey/internal/model"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpRect OpKind = iota
	OpLine
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is one recorded drawing call with the colour that was active for it.
type Op struct {
	Kind           OpKind
	Color          model.Color
	X1, Y1, X2, Y2 float64 // rect: X1,Y1 origin and X2,Y2 width,height
	Text           string
}

// Recorder is a Canvas that remembers every call instead of drawing.
type Recorder struct {
	Width, Height int
	Ops           []Op

	fill, stroke model.Color
}

// NewRecorder creates a Recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int)       { return r.Width, r.Height }
func (r *Recorder) SetFill(c model.Color)   { r.fill = c }
func (r *Recorder) SetStroke(c model.Color) { r.stroke = c }

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Color: r.fill, X1: x, Y1: y, X2: w, Y2: h})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Color: r.stroke, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) Text(x, y float64, s string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Color: r.stroke, X1: x, Y1: y, Text: s})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the ops of kind in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}
