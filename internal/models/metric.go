package models

import (
	"fmt"
	"strings"
)

// MetricType identifies what a recorded measurement describes.
type MetricType string

const (
	MetricWeight      MetricType = "weight"
	MetricDistance    MetricType = "distance"
	MetricDuration    MetricType = "duration"
	MetricRepetitions MetricType = "repetitions"
	MetricRestTime    MetricType = "restTime"
)

// MetricPriority is the fixed display order for summary badges.
var MetricPriority = []MetricType{
	MetricWeight,
	MetricDistance,
	MetricDuration,
	MetricRepetitions,
	MetricRestTime,
}

// AllowedUnits maps each metric type to the units a metric of that type may carry.
var AllowedUnits = map[MetricType][]string{
	MetricWeight:      {"kg", "lb"},
	MetricDistance:    {"m", "km", "mi"},
	MetricDuration:    {"sec", "min", "hr"},
	MetricRepetitions: {"reps"},
	MetricRestTime:    {"sec", "min"},
}

// Valid reports whether t is a known metric type.
func (t MetricType) Valid() bool {
	_, ok := AllowedUnits[t]
	return ok
}

// AllowsUnit reports whether unit belongs to t's allowed-unit set.
// Comparison is case-insensitive; units are lower-cased for display anyway.
func (t MetricType) AllowsUnit(unit string) bool {
	for _, u := range AllowedUnits[t] {
		if strings.EqualFold(u, unit) {
			return true
		}
	}
	return false
}

// ExerciseMetric is a single typed, unit-qualified measurement within a set.
type ExerciseMetric struct {
	Type  MetricType `yaml:"type" json:"type"`
	Value float64    `yaml:"value" json:"value"`
	Unit  string     `yaml:"unit" json:"unit"`
}

// Validate checks the metric against its type's contract: known type,
// non-negative value, unit drawn from the type's allowed-unit set.
func (m ExerciseMetric) Validate() error {
	if !m.Type.Valid() {
		return fmt.Errorf("unknown metric type %q", m.Type)
	}
	if m.Value < 0 {
		return fmt.Errorf("metric %s: value %v is negative", m.Type, m.Value)
	}
	if !m.Type.AllowsUnit(m.Unit) {
		return fmt.Errorf("metric %s: unit %q not in %v", m.Type, m.Unit, AllowedUnits[m.Type])
	}
	return nil
}

// ExerciseSet is one recorded attempt within an exercise instance.
type ExerciseSet struct {
	ID      string           `yaml:"id" json:"id"`
	Metrics []ExerciseMetric `yaml:"metrics" json:"metrics"`
}

// Metric returns the first metric of the given type. Sets are allowed to
// carry duplicate types; display helpers assume at most one per type and
// take the first occurrence.
func (s ExerciseSet) Metric(t MetricType) (ExerciseMetric, bool) {
	for _, m := range s.Metrics {
		if m.Type == t {
			return m, true
		}
	}
	return ExerciseMetric{}, false
}

// Clone returns a deep copy of the set.
func (s ExerciseSet) Clone() ExerciseSet {
	out := s
	out.Metrics = make([]ExerciseMetric, len(s.Metrics))
	copy(out.Metrics, s.Metrics)
	return out
}
