package models

import "github.com/google/uuid"

// SelectedMetric declares one metric an exercise tracks by default,
// pinned to the unit picked when the template was saved.
type SelectedMetric struct {
	Type MetricType `yaml:"type" json:"type"`
	Unit string     `yaml:"unit" json:"unit"`
}

// Exercise is both a library template and a per-workout instance; the two
// roles share one shape. A template has no sets of its own. An instance is
// produced by Instantiate and is fully independent of its template.
type Exercise struct {
	ID              string           `yaml:"id" json:"id"`
	Name            string           `yaml:"name" json:"name"`
	Category        string           `yaml:"category" json:"category"`
	SelectedMetrics []SelectedMetric `yaml:"selected_metrics" json:"selectedMetrics"`
	Sets            []ExerciseSet    `yaml:"sets,omitempty" json:"sets,omitempty"`
	Notes           string           `yaml:"notes,omitempty" json:"notes,omitempty"`
	Media           []string         `yaml:"media,omitempty" json:"media,omitempty"`
}

// Clone returns a deep copy of the exercise, ids included.
func (e Exercise) Clone() Exercise {
	out := e
	out.SelectedMetrics = make([]SelectedMetric, len(e.SelectedMetrics))
	copy(out.SelectedMetrics, e.SelectedMetrics)
	out.Sets = make([]ExerciseSet, len(e.Sets))
	for i, s := range e.Sets {
		out.Sets[i] = s.Clone()
	}
	out.Media = make([]string, len(e.Media))
	copy(out.Media, e.Media)
	return out
}

// Instantiate produces a per-workout copy of a template: structurally
// identical, but with fresh ids for the exercise and any sets, and no
// back-reference to the template. Mutating one never mutates the other.
func (e Exercise) Instantiate() Exercise {
	out := e.Clone()
	out.ID = uuid.NewString()
	for i := range out.Sets {
		out.Sets[i].ID = uuid.NewString()
	}
	return out
}
