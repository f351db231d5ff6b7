package summary

import (
	"strings"

	"github.com/claude/liftlog/internal/models"
)

// TypeStat accumulates every historical occurrence of one metric type for
// one exercise identity across workouts. Unlike the badge summary, zero
// values count here: they contribute to Count and Total.
type TypeStat struct {
	Total float64
	Max   float64
	Count int
	Unit  string
}

// Average returns Total/Count, or 0 when nothing was recorded.
func (s TypeStat) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Total / float64(s.Count)
}

// Stats scans every workout's exercise instances matching exerciseID and
// folds their metrics into per-type statistics. Unit is the last seen for
// the type. Missing data yields an empty map, never an error.
func Stats(workouts []models.Workout, exerciseID string) map[models.MetricType]TypeStat {
	stats := make(map[models.MetricType]TypeStat)
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if ex.ID != exerciseID {
				continue
			}
			for _, set := range ex.Sets {
				for _, m := range set.Metrics {
					s := stats[m.Type]
					s.Total += m.Value
					if m.Value > s.Max {
						s.Max = m.Value
					}
					s.Count++
					s.Unit = strings.ToLower(m.Unit)
					stats[m.Type] = s
				}
			}
		}
	}
	return stats
}
