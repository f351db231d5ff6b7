package journal

import (
	"sort"
	"strings"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// CategoryDraft is the caller-supplied payload for CreateCategory.
type CategoryDraft struct {
	Name  string
	Color string
	Icon  models.IconKey
}

// CategoryPatch updates individual category fields; nil means unchanged.
type CategoryPatch struct {
	Name  *string
	Color *string
	Icon  *models.IconKey
}

// CreateCategory registers a new category under a generated surrogate id.
// The icon key is validated against the fixed registry here, at creation
// time, so render paths never see an unknown key.
func (j *Journal) CreateCategory(d CategoryDraft) (models.Category, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return models.Category{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !models.ValidRGBHex(d.Color) {
		return models.Category{}, &ValidationError{Field: "color", Reason: "must be #RRGGBB"}
	}
	if !d.Icon.Valid() {
		return models.Category{}, &ValidationError{Field: "icon", Reason: "unknown icon key " + string(d.Icon)}
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, exists := j.byName[name]; exists {
		return models.Category{}, &ValidationError{Field: "name", Reason: "already in use"}
	}

	c := &models.Category{
		ID:    uuid.NewString(),
		Name:  name,
		Color: d.Color,
		Icon:  d.Icon,
	}
	j.categories[c.ID] = c
	j.byName[c.Name] = c.ID
	j.log.Debug("category created", "id", c.ID, "name", c.Name)
	return *c, nil
}

// UpdateCategory patches the category currently named oldName. A rename
// re-keys the name index but does NOT rewrite the category strings stored
// on existing workouts and exercises; those keep the old name and fall
// back to the default category info. Known defect, kept intentionally
// (see DESIGN.md). Returns nil when oldName is unknown.
func (j *Journal) UpdateCategory(oldName string, p CategoryPatch) (*models.Category, error) {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Color != nil && !models.ValidRGBHex(*p.Color) {
		return nil, &ValidationError{Field: "color", Reason: "must be #RRGGBB"}
	}
	if p.Icon != nil && !p.Icon.Valid() {
		return nil, &ValidationError{Field: "icon", Reason: "unknown icon key " + string(*p.Icon)}
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	id, ok := j.byName[oldName]
	if !ok {
		return nil, nil
	}
	c := j.categories[id]

	if p.Name != nil && *p.Name != c.Name {
		newName := strings.TrimSpace(*p.Name)
		if _, taken := j.byName[newName]; taken {
			return nil, &ValidationError{Field: "name", Reason: "already in use"}
		}
		delete(j.byName, c.Name)
		c.Name = newName
		j.byName[c.Name] = c.ID
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}

	out := *c
	return &out, nil
}

// CategoryInfo returns the category registered under name, or the fixed
// gray/no-icon default for an unknown name. It never fails.
func (j *Journal) CategoryInfo(name string) models.Category {
	j.mu.Lock()
	defer j.mu.Unlock()
	if id, ok := j.byName[name]; ok {
		return *j.categories[id]
	}
	return models.DefaultCategory(name)
}

// Categories returns a snapshot of the registry sorted by name.
func (j *Journal) Categories() []models.Category {
	j.mu.Lock()
	defer j.mu.Unlock()

	result := make([]models.Category, 0, len(j.categories))
	for _, c := range j.categories {
		result = append(result, *c)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Name < result[b].Name })
	return result
}
