package panel

import "log/slog"

// ExercisePanel identifies an exercise panel by the pair of parent
// workout and exercise-instance ids. The same exercise id surfaced under
// a different workout is a different panel.
type ExercisePanel struct {
	WorkoutID  string
	ExerciseID string
}

// NewWorkoutCoordinator returns the coordinator for the workout list,
// where panels are identified by workout id.
func NewWorkoutCoordinator(log *slog.Logger) *Coordinator[string] {
	return New[string]("workouts", log)
}

// NewExerciseCoordinator returns the coordinator for exercises within a
// workout, keyed by (workout, exercise) pairs.
func NewExerciseCoordinator(log *slog.Logger) *Coordinator[ExercisePanel] {
	return New[ExercisePanel]("exercises", log)
}
