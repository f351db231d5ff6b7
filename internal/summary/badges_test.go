package summary

import (
	"testing"

	"github.com/claude/liftlog/internal/models"
)

func exerciseWithSets(sets ...models.ExerciseSet) models.Exercise {
	return models.Exercise{ID: "e1", Name: "Bench Press", Sets: sets}
}

func weightSet(id string, value float64, unit string) models.ExerciseSet {
	return models.ExerciseSet{ID: id, Metrics: []models.ExerciseMetric{
		{Type: models.MetricWeight, Value: value, Unit: unit},
	}}
}

func badgeTexts(badges []Badge) []string {
	texts := make([]string, len(badges))
	for i, b := range badges {
		texts[i] = b.Text
	}
	return texts
}

// TestSummarizeMinMaxRange verifies the range format: two sets with
// weights 10 and 20 lb render as "10-20lb" after the set-count badge.
func TestSummarizeMinMaxRange(t *testing.T) {
	ex := exerciseWithSets(weightSet("s1", 10, "lb"), weightSet("s2", 20, "lb"))

	badges := Summarize(ex)
	if len(badges) != 2 {
		t.Fatalf("badges = %v, want set count plus weight", badgeTexts(badges))
	}
	if badges[0].Kind != BadgeSetCount || badges[0].Text != "2 sets" {
		t.Errorf("leading badge = %+v, want the set count", badges[0])
	}
	if badges[1].Kind != BadgeKind(models.MetricWeight) || badges[1].Text != "10-20lb" {
		t.Errorf("weight badge = %+v, want text %q", badges[1], "10-20lb")
	}
}

// TestSummarizeSingleValue verifies that equal min and max collapse to a
// single "{value}{unit}" badge, with units lower-cased.
func TestSummarizeSingleValue(t *testing.T) {
	ex := exerciseWithSets(weightSet("s1", 60, "KG"), weightSet("s2", 60, "kg"))

	badges := Summarize(ex)
	if len(badges) != 2 || badges[1].Text != "60kg" {
		t.Errorf("badges = %v, want [\"2 sets\" \"60kg\"]", badgeTexts(badges))
	}
}

// TestSummarizeZeroSkip verifies the zero-handling rule: a type whose
// values are all zero emits no badge at all.
func TestSummarizeZeroSkip(t *testing.T) {
	ex := exerciseWithSets(models.ExerciseSet{ID: "s1", Metrics: []models.ExerciseMetric{
		{Type: models.MetricDistance, Value: 0, Unit: "km"},
	}})

	badges := Summarize(ex)
	for _, b := range badges {
		if b.Kind == BadgeKind(models.MetricDistance) {
			t.Errorf("zero-only distance still produced badge %+v", b)
		}
	}
}

// TestSummarizeMinIgnoresZeros verifies the asymmetry inside one type:
// min is over strictly-positive values, max over all recorded values.
func TestSummarizeMinIgnoresZeros(t *testing.T) {
	ex := exerciseWithSets(
		weightSet("s1", 0, "kg"),
		weightSet("s2", 40, "kg"),
		weightSet("s3", 50, "kg"),
	)

	badges := Summarize(ex)
	if len(badges) != 2 || badges[1].Text != "40-50kg" {
		t.Errorf("badges = %v, want weight %q", badgeTexts(badges), "40-50kg")
	}
}

// TestSummarizePriorityOrder verifies metric badges follow the fixed
// priority order regardless of recording order.
func TestSummarizePriorityOrder(t *testing.T) {
	ex := exerciseWithSets(models.ExerciseSet{ID: "s1", Metrics: []models.ExerciseMetric{
		{Type: models.MetricRestTime, Value: 90, Unit: "sec"},
		{Type: models.MetricRepetitions, Value: 8, Unit: "reps"},
		{Type: models.MetricWeight, Value: 70, Unit: "kg"},
	}})

	badges := Summarize(ex)
	wantKinds := []BadgeKind{
		BadgeSetCount,
		BadgeKind(models.MetricWeight),
		BadgeKind(models.MetricRepetitions),
		BadgeKind(models.MetricRestTime),
	}
	if len(badges) != len(wantKinds) {
		t.Fatalf("badges = %v, want %d entries", badgeTexts(badges), len(wantKinds))
	}
	for i, k := range wantKinds {
		if badges[i].Kind != k {
			t.Errorf("badge %d kind = %q, want %q", i, badges[i].Kind, k)
		}
	}
}

// TestSummarizeNoMetricsFallbacks verifies the badge fallbacks for
// exercises with no recorded metric values.
func TestSummarizeNoMetricsFallbacks(t *testing.T) {
	cases := []struct {
		name string
		ex   models.Exercise
		want []string
	}{
		{
			"nothing at all",
			models.Exercise{ID: "e1", Name: "Bench Press"},
			[]string{"no performance data recorded"},
		},
		{
			"empty sets only",
			exerciseWithSets(models.ExerciseSet{ID: "s1"}),
			[]string{"1 set"},
		},
		{
			"notes and media only",
			models.Exercise{ID: "e1", Notes: "form check", Media: []string{"clip.mp4"}},
			[]string{"has notes", "has media"},
		},
		{
			"sets plus notes",
			models.Exercise{ID: "e1", Notes: "tough", Sets: []models.ExerciseSet{{ID: "s1"}, {ID: "s2"}}},
			[]string{"2 sets", "has notes"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := badgeTexts(Summarize(tc.ex))
			if len(got) != len(tc.want) {
				t.Fatalf("badges = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("badge %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// TestSummarizeZeroMetricsFallback verifies that an exercise whose every
// recorded value is zero falls back to notes/media indicators after the
// set count.
func TestSummarizeZeroMetricsFallback(t *testing.T) {
	ex := models.Exercise{
		ID:    "e1",
		Notes: "deload",
		Sets: []models.ExerciseSet{{ID: "s1", Metrics: []models.ExerciseMetric{
			{Type: models.MetricWeight, Value: 0, Unit: "kg"},
		}}},
	}

	got := badgeTexts(Summarize(ex))
	want := []string{"1 set", "has notes"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("badges = %v, want %v", got, want)
	}
}
