package journal

import (
	"sort"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// MinTitleLength is the shortest workout title CreateWorkout accepts.
const MinTitleLength = 3

// WorkoutDraft is the caller-supplied payload for CreateWorkout.
// Exercises are treated as templates and copied in via Instantiate.
type WorkoutDraft struct {
	Title     string
	Category  string
	Date      time.Time
	Exercises []models.Exercise
	Completed bool
}

// CreateWorkout validates the draft and stores a new workout with a
// generated id. The draft's exercises become independent instances.
func (j *Journal) CreateWorkout(d WorkoutDraft) (models.Workout, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return models.Workout{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if len(title) < MinTitleLength {
		return models.Workout{}, &ValidationError{Field: "title", Reason: "too short"}
	}

	w := &models.Workout{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  d.Category,
		Date:      d.Date,
		Completed: d.Completed,
	}
	for _, ex := range d.Exercises {
		w.Exercises = append(w.Exercises, ex.Instantiate())
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.workouts[w.ID] = w
	j.log.Debug("workout created", "id", w.ID, "title", w.Title, "date", w.Date)
	return w.Clone(), nil
}

// Workout returns a copy of the workout with the given id, or nil.
func (j *Journal) Workout(id string) *models.Workout {
	j.mu.Lock()
	defer j.mu.Unlock()
	w, ok := j.workouts[id]
	if !ok {
		return nil
	}
	c := w.Clone()
	return &c
}

// WorkoutsOn returns every workout falling on the same calendar day as
// date, sorted by time-of-day ascending then id for a stable order.
func (j *Journal) WorkoutsOn(date time.Time) []models.Workout {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.workoutsOnLocked(date)
}

func (j *Journal) workoutsOnLocked(date time.Time) []models.Workout {
	var result []models.Workout
	for _, w := range j.workouts {
		if models.SameDay(w.Date, date) {
			result = append(result, w.Clone())
		}
	}
	sortWorkouts(result)
	return result
}

// WorkoutsForYesterday returns the workouts logged on the previous
// calendar day.
func (j *Journal) WorkoutsForYesterday() []models.Workout {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.workoutsOnLocked(j.now().AddDate(0, 0, -1))
}

// WorkoutsForPastWeek returns the workouts from two through six days ago.
// Today and yesterday are excluded; they have their own views.
func (j *Journal) WorkoutsForPastWeek() []models.Workout {
	j.mu.Lock()
	defer j.mu.Unlock()

	var result []models.Workout
	today := j.now()
	for back := 2; back <= 6; back++ {
		result = append(result, j.workoutsOnLocked(today.AddDate(0, 0, -back))...)
	}
	return result
}

// DeleteWorkout removes the workout with the given id. Deleting an absent
// id is a no-op, so the operation is idempotent.
func (j *Journal) DeleteWorkout(id string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.workouts[id]; ok {
		delete(j.workouts, id)
		j.log.Debug("workout deleted", "id", id)
	}
}

// AddExercise instantiates a template into the given workout and returns
// the new instance. Returns nil if the workout does not exist.
func (j *Journal) AddExercise(workoutID string, template models.Exercise) *models.Exercise {
	j.mu.Lock()
	defer j.mu.Unlock()
	w, ok := j.workouts[workoutID]
	if !ok {
		return nil
	}
	inst := template.Instantiate()
	w.Exercises = append(w.Exercises, inst)
	c := inst.Clone()
	return &c
}

// AddSet validates the metrics and appends a new set to an exercise
// instance inside a workout. Returns nil with no error when the workout
// or exercise is missing; a ValidationError when a metric breaks its
// type's unit or value contract.
func (j *Journal) AddSet(workoutID, exerciseID string, metrics []models.ExerciseMetric) (*models.ExerciseSet, error) {
	for _, m := range metrics {
		if err := m.Validate(); err != nil {
			return nil, &ValidationError{Field: "metrics", Reason: err.Error()}
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	w, ok := j.workouts[workoutID]
	if !ok {
		return nil, nil
	}
	ex := w.Exercise(exerciseID)
	if ex == nil {
		return nil, nil
	}

	set := models.ExerciseSet{
		ID:      uuid.NewString(),
		Metrics: append([]models.ExerciseMetric(nil), metrics...),
	}
	ex.Sets = append(ex.Sets, set)
	c := set.Clone()
	return &c, nil
}

func sortWorkouts(ws []models.Workout) {
	sort.Slice(ws, func(a, b int) bool {
		if !ws[a].Date.Equal(ws[b].Date) {
			return ws[a].Date.Before(ws[b].Date)
		}
		return ws[a].ID < ws[b].ID
	})
}
