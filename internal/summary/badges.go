package summary

import (
	"fmt"
	"strconv"

	"github.com/claude/liftlog/internal/models"
)

// BadgeKind tags what a badge describes: a metric type, or one of the
// indicator kinds below.
type BadgeKind string

const (
	BadgeSetCount BadgeKind = "setCount"
	BadgeNotes    BadgeKind = "notes"
	BadgeMedia    BadgeKind = "media"
	BadgeEmpty    BadgeKind = "empty"
)

// Badge is one display-ready summary element. The presentation layer
// renders badges in slice order; this package never emits markup.
type Badge struct {
	Kind BadgeKind
	Icon models.IconKey
	Text string
}

var metricIcons = map[models.MetricType]models.IconKey{
	models.MetricWeight:      models.IconBarbell,
	models.MetricDistance:    models.IconRunning,
	models.MetricDuration:    models.IconTimer,
	models.MetricRepetitions: models.IconRepeat,
	models.MetricRestTime:    models.IconTimer,
}

// Summarize builds the ordered badge list for one exercise instance.
//
// With no recorded metrics at all, it falls back to indicators for
// whatever the exercise does have (sets, notes, media), or a single
// "no performance data" badge. Otherwise it leads with the set count,
// then walks metric types in fixed priority order emitting a value or
// min-max range per type. A type whose every value is zero is treated
// as having no data and skipped; the minimum ignores zero values while
// the maximum is taken over all of them.
func Summarize(ex models.Exercise) []Badge {
	c := Collect(ex)

	recorded := 0
	for _, vals := range c.ValuesByType {
		recorded += len(vals)
	}

	var badges []Badge
	seen := make(map[BadgeKind]bool)
	emit := func(b Badge) {
		if seen[b.Kind] {
			return
		}
		seen[b.Kind] = true
		badges = append(badges, b)
	}

	if recorded == 0 {
		if len(ex.Sets) > 0 {
			emit(setCountBadge(len(ex.Sets)))
		}
		if ex.Notes != "" {
			emit(Badge{Kind: BadgeNotes, Icon: models.IconNotes, Text: "has notes"})
		}
		if len(ex.Media) > 0 {
			emit(Badge{Kind: BadgeMedia, Icon: models.IconMedia, Text: "has media"})
		}
		if len(badges) == 0 {
			badges = append(badges, Badge{Kind: BadgeEmpty, Text: "no performance data recorded"})
		}
		return badges
	}

	if len(ex.Sets) > 0 {
		emit(setCountBadge(len(ex.Sets)))
	}

	metricEmitted := false
	for _, t := range models.MetricPriority {
		vals := c.ValuesByType[t]
		if len(vals) == 0 {
			continue
		}

		max := vals[0]
		for _, v := range vals[1:] {
			if v > max {
				max = v
			}
		}
		if max == 0 {
			continue
		}

		min := max
		for _, v := range vals {
			if v > 0 && v < min {
				min = v
			}
		}

		unit := c.UnitsByType[t]
		text := formatValue(max) + unit
		if min != max {
			text = formatValue(min) + "-" + formatValue(max) + unit
		}
		emit(Badge{Kind: BadgeKind(t), Icon: metricIcons[t], Text: text})
		metricEmitted = true
	}

	if !metricEmitted {
		if ex.Notes != "" {
			emit(Badge{Kind: BadgeNotes, Icon: models.IconNotes, Text: "has notes"})
		}
		if len(ex.Media) > 0 {
			emit(Badge{Kind: BadgeMedia, Icon: models.IconMedia, Text: "has media"})
		}
	}

	return badges
}

func setCountBadge(n int) Badge {
	text := fmt.Sprintf("%d sets", n)
	if n == 1 {
		text = "1 set"
	}
	return Badge{Kind: BadgeSetCount, Icon: models.IconSets, Text: text}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
