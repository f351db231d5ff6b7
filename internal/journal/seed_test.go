package journal

import (
	"testing"
	"time"
)

const seedYAML = `
categories:
  - name: Strength
    color: "#E53935"
    icon: barbell
exercises:
  - name: Back Squat
    category: Strength
    selected_metrics:
      - { type: weight, unit: kg }
      - { type: repetitions, unit: reps }
workouts:
  - title: Lower body
    category: Strength
    date: 2026-08-30T07:30:00Z
    completed: true
    exercises:
      - template: Back Squat
        sets:
          - metrics:
              - { type: weight, value: 80, unit: kg }
              - { type: repetitions, value: 5, unit: reps }
          - metrics:
              - { type: weight, value: 90, unit: kg }
              - { type: repetitions, value: 3, unit: reps }
`

// TestApplySeed verifies that parsed seed data lands in all three
// collections and that workout exercises are instances, not the library
// templates themselves.
func TestApplySeed(t *testing.T) {
	j := newTestJournal()

	sd, err := ParseSeed([]byte(seedYAML))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if err := j.ApplySeed(sd); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}

	if got := j.CategoryInfo("Strength"); got.Color != "#E53935" {
		t.Errorf("category not seeded: %+v", got)
	}

	lib := j.SavedExercises()
	if len(lib) != 1 || lib[0].Name != "Back Squat" {
		t.Fatalf("library = %+v, want one Back Squat template", lib)
	}

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	workouts := j.WorkoutsOn(day)
	if len(workouts) != 1 {
		t.Fatalf("expected 1 seeded workout, got %d", len(workouts))
	}

	w := workouts[0]
	if len(w.Exercises) != 1 || len(w.Exercises[0].Sets) != 2 {
		t.Fatalf("seeded workout shape wrong: %+v", w)
	}
	if w.Exercises[0].ID == lib[0].ID {
		t.Error("workout exercise shares the template id; expected an instance")
	}
}

// TestApplySeedRejectsBadData verifies seed input goes through the same
// validation as runtime mutations.
func TestApplySeedRejectsBadData(t *testing.T) {
	j := newTestJournal()

	sd, err := ParseSeed([]byte(`
categories:
  - name: Strength
    color: "magenta"
`))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if err := j.ApplySeed(sd); err == nil {
		t.Error("expected ApplySeed to reject an invalid category color")
	}
}
