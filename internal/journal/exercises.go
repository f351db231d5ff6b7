package journal

import (
	"sort"
	"strings"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// SaveExercise upserts a template into the exercise library, keyed by id:
// an existing id is fully replaced, a missing or unknown id inserts. A
// template saved without an id gets one generated. The stored copy is
// independent of the argument.
func (j *Journal) SaveExercise(t models.Exercise) (models.Exercise, error) {
	if strings.TrimSpace(t.Name) == "" {
		return models.Exercise{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	for _, sm := range t.SelectedMetrics {
		if !sm.Type.Valid() {
			return models.Exercise{}, &ValidationError{Field: "selectedMetrics", Reason: "unknown metric type " + string(sm.Type)}
		}
		if !sm.Type.AllowsUnit(sm.Unit) {
			return models.Exercise{}, &ValidationError{Field: "selectedMetrics", Reason: "unit " + sm.Unit + " not allowed for " + string(sm.Type)}
		}
	}

	stored := t.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.library[stored.ID] = &stored
	j.log.Debug("exercise saved", "id", stored.ID, "name", stored.Name)
	return stored.Clone(), nil
}

// SavedExercises returns a snapshot of the exercise library, sorted by
// name then id. Callers always get copies, never the live collection.
func (j *Journal) SavedExercises() []models.Exercise {
	j.mu.Lock()
	defer j.mu.Unlock()

	result := make([]models.Exercise, 0, len(j.library))
	for _, t := range j.library {
		result = append(result, t.Clone())
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].Name != result[b].Name {
			return result[a].Name < result[b].Name
		}
		return result[a].ID < result[b].ID
	})
	return result
}

// SavedExercise returns a copy of the library template with the given id,
// or nil.
func (j *Journal) SavedExercise(id string) *models.Exercise {
	j.mu.Lock()
	defer j.mu.Unlock()
	t, ok := j.library[id]
	if !ok {
		return nil
	}
	c := t.Clone()
	return &c
}
