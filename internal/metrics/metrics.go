// Package metrics holds viewer samplers that reduce a run to one number each.
package metrics

import "github.com/san-kum/molview/internal/viewer"

// Metric observes every tick and summarises the run so far.
type Metric interface {
	viewer.Sampler
	Name() string
	Value() float64
	Reset()
}

// Standard returns the metrics stored with every recording.
func Standard() []Metric {
	return []Metric{NewBondDrift(), NewClearance(), NewCameraTravel()}
}

// Collect reads every metric into a map keyed by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
