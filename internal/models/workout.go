package models

import "time"

// Workout is a dated collection of exercise instances.
type Workout struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Category  string     `yaml:"category" json:"category"`
	Date      time.Time  `yaml:"date" json:"date"`
	Exercises []Exercise `yaml:"exercises" json:"exercises"`
	Completed bool       `yaml:"completed" json:"completed"`
}

// SameDay reports calendar-day equality: year, month and day match;
// time-of-day is ignored (it only matters for sort order).
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Clone returns a deep copy of the workout.
func (w Workout) Clone() Workout {
	out := w
	out.Exercises = make([]Exercise, len(w.Exercises))
	for i, e := range w.Exercises {
		out.Exercises[i] = e.Clone()
	}
	return out
}

// Exercise returns the embedded instance with the given id, or nil.
func (w *Workout) Exercise(id string) *Exercise {
	for i := range w.Exercises {
		if w.Exercises[i].ID == id {
			return &w.Exercises[i]
		}
	}
	return nil
}
