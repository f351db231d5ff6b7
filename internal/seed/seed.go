// Package seed fills a journal with believable demo data for the dev
// harness and for test fixtures.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/claude/liftlog/internal/journal"
	"github.com/claude/liftlog/internal/models"
)

type demoCategory struct {
	name  string
	color string
	icon  models.IconKey
}

var demoCategories = []demoCategory{
	{"Strength", "#E53935", models.IconBarbell},
	{"Cardio", "#1E88E5", models.IconRunning},
	{"Mobility", "#43A047", models.IconYoga},
}

type demoTemplate struct {
	name     string
	category string
	metrics  []models.SelectedMetric
}

var demoTemplates = []demoTemplate{
	{"Back Squat", "Strength", []models.SelectedMetric{
		{Type: models.MetricWeight, Unit: "kg"},
		{Type: models.MetricRepetitions, Unit: "reps"},
		{Type: models.MetricRestTime, Unit: "sec"},
	}},
	{"Bench Press", "Strength", []models.SelectedMetric{
		{Type: models.MetricWeight, Unit: "kg"},
		{Type: models.MetricRepetitions, Unit: "reps"},
	}},
	{"Deadlift", "Strength", []models.SelectedMetric{
		{Type: models.MetricWeight, Unit: "kg"},
		{Type: models.MetricRepetitions, Unit: "reps"},
	}},
	{"Treadmill Run", "Cardio", []models.SelectedMetric{
		{Type: models.MetricDistance, Unit: "km"},
		{Type: models.MetricDuration, Unit: "min"},
	}},
	{"Rowing", "Cardio", []models.SelectedMetric{
		{Type: models.MetricDistance, Unit: "m"},
		{Type: models.MetricDuration, Unit: "min"},
	}},
	{"Plank", "Mobility", []models.SelectedMetric{
		{Type: models.MetricDuration, Unit: "sec"},
	}},
}

// Populate seeds j with demo categories, templates, and workouts spread
// over the past days calendar days (today included). The same seed value
// reproduces the same journal.
func Populate(j *journal.Journal, days int, seed int64) error {
	f := gofakeit.New(seed)

	for _, c := range demoCategories {
		if _, err := j.CreateCategory(journal.CategoryDraft{Name: c.name, Color: c.color, Icon: c.icon}); err != nil {
			return fmt.Errorf("demo category %q: %w", c.name, err)
		}
	}

	templates := make([]models.Exercise, 0, len(demoTemplates))
	for _, t := range demoTemplates {
		saved, err := j.SaveExercise(models.Exercise{
			Name:            t.name,
			Category:        t.category,
			SelectedMetrics: t.metrics,
		})
		if err != nil {
			return fmt.Errorf("demo template %q: %w", t.name, err)
		}
		templates = append(templates, saved)
	}

	now := time.Now()
	for back := 0; back < days; back++ {
		if f.Number(0, 2) == 0 {
			continue // rest day
		}
		day := now.AddDate(0, 0, -back)
		date := time.Date(day.Year(), day.Month(), day.Day(), f.Number(6, 20), f.Number(0, 59), 0, 0, day.Location())

		cat := demoCategories[f.Number(0, len(demoCategories)-1)]
		w, err := j.CreateWorkout(journal.WorkoutDraft{
			Title:     fmt.Sprintf("%s session", cat.name),
			Category:  cat.name,
			Date:      date,
			Completed: back > 0,
		})
		if err != nil {
			return fmt.Errorf("demo workout: %w", err)
		}

		for _, t := range pickTemplates(f, templates) {
			inst := j.AddExercise(w.ID, t)
			sets := f.Number(2, 4)
			for s := 0; s < sets; s++ {
				if _, err := j.AddSet(w.ID, inst.ID, demoMetrics(f, t)); err != nil {
					return fmt.Errorf("demo set for %q: %w", t.Name, err)
				}
			}
		}
	}
	return nil
}

func pickTemplates(f *gofakeit.Faker, templates []models.Exercise) []models.Exercise {
	count := f.Number(2, 3)
	start := f.Number(0, len(templates)-1)
	picked := make([]models.Exercise, 0, count)
	for i := 0; i < count; i++ {
		picked = append(picked, templates[(start+i)%len(templates)])
	}
	return picked
}

func demoMetrics(f *gofakeit.Faker, t models.Exercise) []models.ExerciseMetric {
	metrics := make([]models.ExerciseMetric, 0, len(t.SelectedMetrics))
	for _, sm := range t.SelectedMetrics {
		var value float64
		switch sm.Type {
		case models.MetricWeight:
			value = float64(f.Number(8, 36)) * 2.5
		case models.MetricDistance:
			if sm.Unit == "m" {
				value = float64(f.Number(500, 2000))
			} else {
				value = f.Float64Range(1, 10)
			}
		case models.MetricDuration:
			if sm.Unit == "sec" {
				value = float64(f.Number(30, 300))
			} else {
				value = float64(f.Number(10, 60))
			}
		case models.MetricRepetitions:
			value = float64(f.Number(3, 15))
		case models.MetricRestTime:
			value = float64(f.Number(30, 180))
		}
		metrics = append(metrics, models.ExerciseMetric{Type: sm.Type, Value: value, Unit: sm.Unit})
	}
	return metrics
}
