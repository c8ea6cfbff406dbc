// Package palette assigns a display colour to every bar.
package palette

import (
	"strconv"

	"sankey/internal/logging"
	"sankey/internal/model"
	"sankey/internal/record"
)

// Resolver picks each bar's colour from a trailing "r, g, b" suffix on its
// line, falling back to a palette entry. Resolution never fails.
type Resolver struct {
	palette model.Palette
}

// NewResolver creates a Resolver over p. A nil or empty p selects the
// default palette.
func NewResolver(p model.Palette) *Resolver {
	if len(p) == 0 {
		p = model.DefaultPalette()
	}
	return &Resolver{palette: p}
}

// Palette returns the fallback table in use.
func (r *Resolver) Palette() model.Palette {
	return r.palette
}

// Resolve returns one colour per line. lines[0] is the axis label line and
// colours the source bar; the rest are records in document order.
func (r *Resolver) Resolve(lines []string) []model.Color {
	log := logging.Logger()
	colors := make([]model.Color, len(lines))
	for i, line := range lines {
		c, ok := Explicit(line)
		if !ok {
			c = r.palette.At(i)
			log.Debug("using palette colour", "line", i+2, "colour", c.String())
		}
		colors[i] = c
	}
	return colors
}

// Explicit extracts the colour given by the last three fields of line.
// ok is false when there are fewer than three fields, any of them is not an
// integer, or any lies outside [0, 255].
func Explicit(line string) (c model.Color, ok bool) {
	fields := record.SplitFields(line)
	if len(fields) < 3 {
		return model.Color{}, false
	}

	var rgb [3]uint8
	for i, f := range fields[len(fields)-3:] {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return model.Color{}, false
		}
		rgb[i] = uint8(v)
	}
	return model.RGB(rgb[0], rgb[1], rgb[2]), true
}
