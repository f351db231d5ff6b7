// Package summary turns raw per-set measurements into display-ready
// summaries and cross-workout statistics. Everything here is a pure
// function over journal-shaped data; there is no internal state.
package summary

import (
	"strings"

	"github.com/claude/liftlog/internal/models"
)

// Collected groups every metric value recorded for one exercise by type.
// Units are lower-cased for display consistency. The maps are always
// non-nil; an exercise with no sets yields empty maps, not an error.
type Collected struct {
	ValuesByType map[models.MetricType][]float64
	UnitsByType  map[models.MetricType]string
}

// Collect scans every set's metrics in order and accumulates values and
// the last-seen unit per type. Duplicate types within one set are folded
// like any other occurrence.
func Collect(ex models.Exercise) Collected {
	c := Collected{
		ValuesByType: make(map[models.MetricType][]float64),
		UnitsByType:  make(map[models.MetricType]string),
	}
	for _, set := range ex.Sets {
		for _, m := range set.Metrics {
			c.ValuesByType[m.Type] = append(c.ValuesByType[m.Type], m.Value)
			c.UnitsByType[m.Type] = strings.ToLower(m.Unit)
		}
	}
	return c
}
