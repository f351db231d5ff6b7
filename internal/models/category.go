package models

import "regexp"

// IconKey names an icon in the fixed registry. Keys are validated when a
// category is created, never resolved dynamically at render time.
type IconKey string

const (
	IconNone     IconKey = ""
	IconBarbell  IconKey = "barbell"
	IconDumbbell IconKey = "dumbbell"
	IconRunning  IconKey = "running"
	IconCycling  IconKey = "cycling"
	IconSwimming IconKey = "swimming"
	IconYoga     IconKey = "yoga"
	IconHeart    IconKey = "heart"
	IconTimer    IconKey = "timer"
	IconRepeat   IconKey = "repeat"
	IconNotes    IconKey = "notes"
	IconMedia    IconKey = "media"
	IconSets     IconKey = "sets"
)

var iconRegistry = map[IconKey]struct{}{
	IconBarbell:  {},
	IconDumbbell: {},
	IconRunning:  {},
	IconCycling:  {},
	IconSwimming: {},
	IconYoga:     {},
	IconHeart:    {},
	IconTimer:    {},
	IconRepeat:   {},
	IconNotes:    {},
	IconMedia:    {},
	IconSets:     {},
}

// Valid reports whether k is registered. IconNone is always valid.
func (k IconKey) Valid() bool {
	if k == IconNone {
		return true
	}
	_, ok := iconRegistry[k]
	return ok
}

// DefaultCategoryColor is the gray used for unknown categories.
const DefaultCategoryColor = "#9E9E9E"

var rgbHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidRGBHex reports whether s is a #RRGGBB color string.
func ValidRGBHex(s string) bool {
	return rgbHexPattern.MatchString(s)
}

// Category is a named, color/icon-tagged grouping for workouts and
// exercises. ID is a stable surrogate key; Name is a renamable display
// field. Workouts and exercises reference categories by name, so renames
// can orphan historical records (see DESIGN.md).
type Category struct {
	ID    string  `yaml:"id" json:"id"`
	Name  string  `yaml:"name" json:"name"`
	Color string  `yaml:"color" json:"color"`
	Icon  IconKey `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// DefaultCategory is the fallback returned for unknown category names:
// gray, no icon, no surrogate id.
func DefaultCategory(name string) Category {
	return Category{Name: name, Color: DefaultCategoryColor, Icon: IconNone}
}
