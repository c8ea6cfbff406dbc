package model

// Version is the current release of sankey.
const Version = "0.3.1"

// Flow is one named quantity moving from the source to a target bar.
type Flow struct {
	Name      string  `json:"name"`
	Magnitude float64 `json:"magnitude"`
}

// FlowSet is an insertion-ordered collection of flows keyed by name.
// Setting an existing name replaces its magnitude but keeps the position
// where the name was first seen.
type FlowSet struct {
	order  []string
	values map[string]float64
}

// NewFlowSet returns an empty FlowSet.
func NewFlowSet() *FlowSet {
	return &FlowSet{values: make(map[string]float64)}
}

// Set records magnitude for name. It reports whether name was already present.
func (s *FlowSet) Set(name string, magnitude float64) bool {
	_, exists := s.values[name]
	if !exists {
		s.order = append(s.order, name)
	}
	s.values[name] = magnitude
	return exists
}

// Get returns the magnitude stored for name.
func (s *FlowSet) Get(name string) (float64, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Len returns the number of distinct names.
func (s *FlowSet) Len() int {
	return len(s.order)
}

// Total returns the sum of all magnitudes.
func (s *FlowSet) Total() float64 {
	var sum float64
	for _, name := range s.order {
		sum += s.values[name]
	}
	return sum
}

// Flows returns a fresh slice of the flows in first-occurrence order.
func (s *FlowSet) Flows() []Flow {
	flows := make([]Flow, len(s.order))
	for i, name := range s.order {
		flows[i] = Flow{Name: name, Magnitude: s.values[name]}
	}
	return flows
}
