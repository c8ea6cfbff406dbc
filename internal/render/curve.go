package render

import (
	"fmt"
	"math"
	"strings"

	"sankey/internal/model"
)

// Curve selects the centreline shape of a band.
type Curve int

const (
	// Sine eases in and out of both bars along a half sine wave.
	Sine Curve = iota
	// Linear joins the bars with a straight slope.
	Linear
)

func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	default:
		return "sine"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(b []byte) error {
	v, err := ParseCurve(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCurve maps a name to a Curve. The empty string selects Sine.
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sine", "curved":
		return Sine, nil
	case "linear", "straight":
		return Linear, nil
	}
	return Sine, fmt.Errorf("unknown curve %q (want sine or linear)", s)
}

// Band describes the ribbon between a source segment and a target bar.
type Band struct {
	Start    int     // first column
	End      int     // last column
	SourceY  float64 // top of the source segment at Start
	TargetY  float64 // top of the target bar at End
	Height   float64 // thickness
	From, To model.Color
}

// Strip is one 1px column of a band.
type Strip struct {
	X      int
	Y      float64 // top of the band at X
	Height float64
	Color  model.Color
}

// Progress returns how far column x lies along the band, in [0, 1].
func (b Band) Progress(x int) float64 {
	if b.End == b.Start {
		return 1
	}
	return float64(x-b.Start) / float64(b.End-b.Start)
}

// StripAt computes the column of b at x for curve.
func StripAt(x int, b Band, curve Curve) Strip {
	t := b.Progress(x)
	dy := b.TargetY - b.SourceY

	var y float64
	switch curve {
	case Linear:
		y = b.SourceY + dy*t
	default:
		mid := b.SourceY + dy/2
		y = mid + dy/2*math.Sin(-math.Pi/2+math.Pi*t)
	}

	return Strip{
		X:      x,
		Y:      y,
		Height: b.Height,
		Color:  b.From.Lerp(b.To, t),
	}
}
