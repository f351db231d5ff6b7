package journal

import (
	"fmt"
	"os"
	"time"

	"github.com/claude/liftlog/internal/models"
	"gopkg.in/yaml.v3"
)

// SeedData is the YAML shape the journal is populated from at process
// start. Workout exercises reference library templates by name so that
// instances go through the normal copy-on-add path.
type SeedData struct {
	Categories []SeedCategory `yaml:"categories"`
	Exercises  []SeedExercise `yaml:"exercises"`
	Workouts   []SeedWorkout  `yaml:"workouts"`
}

type SeedCategory struct {
	Name  string         `yaml:"name"`
	Color string         `yaml:"color"`
	Icon  models.IconKey `yaml:"icon,omitempty"`
}

type SeedExercise struct {
	Name            string                  `yaml:"name"`
	Category        string                  `yaml:"category"`
	SelectedMetrics []models.SelectedMetric `yaml:"selected_metrics"`
	Notes           string                  `yaml:"notes,omitempty"`
	Media           []string                `yaml:"media,omitempty"`
}

type SeedWorkout struct {
	Title     string            `yaml:"title"`
	Category  string            `yaml:"category"`
	Date      time.Time         `yaml:"date"`
	Completed bool              `yaml:"completed"`
	Exercises []SeedWorkoutItem `yaml:"exercises"`
}

type SeedWorkoutItem struct {
	Template string    `yaml:"template"`
	Notes    string    `yaml:"notes,omitempty"`
	Media    []string  `yaml:"media,omitempty"`
	Sets     []SeedSet `yaml:"sets"`
}

type SeedSet struct {
	Metrics []models.ExerciseMetric `yaml:"metrics"`
}

// ParseSeed decodes YAML seed data.
func ParseSeed(data []byte) (SeedData, error) {
	var sd SeedData
	if err := yaml.Unmarshal(data, &sd); err != nil {
		return SeedData{}, fmt.Errorf("parsing seed data: %w", err)
	}
	return sd, nil
}

// LoadSeedFile reads and decodes a YAML seed file.
func LoadSeedFile(path string) (SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSeed(data)
}

// ApplySeed populates the journal through its normal mutation operations,
// so seed data gets the same validation as runtime input. Workout items
// naming an unknown template become bare instances carrying just the name.
func (j *Journal) ApplySeed(sd SeedData) error {
	for _, c := range sd.Categories {
		if _, err := j.CreateCategory(CategoryDraft{Name: c.Name, Color: c.Color, Icon: c.Icon}); err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Name, err)
		}
	}

	byName := make(map[string]models.Exercise)
	for _, e := range sd.Exercises {
		saved, err := j.SaveExercise(models.Exercise{
			Name:            e.Name,
			Category:        e.Category,
			SelectedMetrics: e.SelectedMetrics,
			Notes:           e.Notes,
			Media:           e.Media,
		})
		if err != nil {
			return fmt.Errorf("seeding exercise %q: %w", e.Name, err)
		}
		byName[saved.Name] = saved
	}

	for _, sw := range sd.Workouts {
		w, err := j.CreateWorkout(WorkoutDraft{
			Title:     sw.Title,
			Category:  sw.Category,
			Date:      sw.Date,
			Completed: sw.Completed,
		})
		if err != nil {
			return fmt.Errorf("seeding workout %q: %w", sw.Title, err)
		}
		for _, item := range sw.Exercises {
			template, ok := byName[item.Template]
			if !ok {
				template = models.Exercise{Name: item.Template}
			}
			template.Notes = item.Notes
			template.Media = item.Media
			inst := j.AddExercise(w.ID, template)
			for _, set := range item.Sets {
				if _, err := j.AddSet(w.ID, inst.ID, set.Metrics); err != nil {
					return fmt.Errorf("seeding set in %q/%q: %w", sw.Title, item.Template, err)
				}
			}
		}
	}

	j.log.Info("seed applied",
		"categories", len(sd.Categories),
		"exercises", len(sd.Exercises),
		"workouts", len(sd.Workouts))
	return nil
}
