// Package journal holds the canonical in-memory collections of the fitness
// journal: workouts, the exercise-template library, and the category
// registry. It is pure CRUD plus lookups; derived computation lives in
// the summary package.
package journal

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// ValidationError rejects a malformed create/update payload. Lookup misses
// are never errors; they come back as nil or empty collections.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Journal owns the shared collections. State is process-lifetime only:
// populated from seed data at startup, mutated through Journal methods,
// gone at exit. All query methods return deep copies, never live objects.
type Journal struct {
	mu  sync.Mutex
	now func() time.Time
	log *slog.Logger

	workouts   map[string]*models.Workout
	library    map[string]*models.Exercise
	categories map[string]*models.Category // keyed by surrogate id
	byName     map[string]string           // category name -> surrogate id
}

// Option configures a Journal at construction time.
type Option func(*Journal)

// WithClock overrides the wall clock used for "today"-relative queries.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(j *Journal) { j.log = log }
}

// New creates an empty Journal. Each instance is fully independent, so
// tests get isolation by constructing their own.
func New(opts ...Option) *Journal {
	j := &Journal{
		now: time.Now,
		log: slog.New(slog.DiscardHandler),
	}
	j.reset()
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Reset drops every collection, returning the Journal to its empty state.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.reset()
}

func (j *Journal) reset() {
	j.workouts = make(map[string]*models.Workout)
	j.library = make(map[string]*models.Exercise)
	j.categories = make(map[string]*models.Category)
	j.byName = make(map[string]string)
}
