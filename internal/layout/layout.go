package layout

import (
	"sankey/internal/model"
)

// Slot is the placement of one flow.
type Slot struct {
	TargetY        float64 `json:"target_y"`
	TargetHeight   float64 `json:"target_height"`
	SourceSegmentY float64 `json:"source_segment_y"` // top of the part of the source bar feeding this flow
}

// Layout is the derived geometry of a diagram. It is recomputed, never
// edited, when the flows change.
type Layout struct {
	TotalHeight  float64 `json:"total_height"`
	SourceY      float64 `json:"source_y"`
	SourceHeight float64 `json:"source_height"`
	Slots        []Slot  `json:"slots"`
}

// Compute places the source bar and one target bar per flow.
//
// The source bar is TotalHeight tall and vertically centred. Target bars
// share TotalHeight in proportion to their magnitudes and stack downward
// from g.TargetTop with g.Gap between them.
func Compute(flows []model.Flow, g Geometry) (Layout, error) {
	n := len(flows)
	if n == 0 {
		return Layout{}, &model.EmptyDiagramError{}
	}

	// Shares are taken relative to the largest magnitude so that the sum
	// stays finite for magnitudes near the float64 limit.
	var largest float64
	for _, f := range flows {
		largest = max(largest, f.Magnitude)
	}
	if largest == 0 {
		return Layout{}, &model.EmptyDiagramError{Flows: n}
	}
	var sum float64
	for _, f := range flows {
		sum += f.Magnitude / largest
	}

	total := g.UsableHeight - g.Gap*float64(n-1)
	if total <= 0 {
		return Layout{}, &model.OverflowError{Flows: n, TotalHeight: total}
	}

	l := Layout{
		TotalHeight:  total,
		SourceY:      (float64(g.Height) - total) / 2,
		SourceHeight: total,
		Slots:        make([]Slot, n),
	}

	targetY := g.TargetTop
	segmentY := l.SourceY
	for i, f := range flows {
		h := f.Magnitude / largest / sum * total
		l.Slots[i] = Slot{TargetY: targetY, TargetHeight: h, SourceSegmentY: segmentY}
		targetY += h + g.Gap
		segmentY += h
	}

	return l, nil
}
