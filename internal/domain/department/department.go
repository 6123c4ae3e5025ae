package department

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

const MaxNameLength = 100

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Department is an administrative unit complaints can be routed to.
type Department struct {
	id          uint
	name        string
	slug        string
	description string
	categories  []vo.Category
	createdAt   time.Time
	updatedAt   time.Time
}

// NewDepartment validates the handled categories against the complaint category set.
// An empty slug is derived from the name.
func NewDepartment(name, slug, description string, categories []string) (*Department, error) {
	d := &Department{}
	if err := d.apply(name, slug, description, categories); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	d.createdAt = now
	d.updatedAt = now
	return d, nil
}

func ReconstructDepartment(id uint, name, slug, description, categories string, createdAt, updatedAt time.Time) *Department {
	valid, _ := vo.ParseCategoryList(categories)
	return &Department{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		categories:  valid,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (d *Department) apply(name, slug, description string, categories []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" || slug != Slugify(slug) {
		return fmt.Errorf("slug must contain only lowercase letters, digits and hyphens")
	}

	parsed, unknown := vo.ParseCategoryList(strings.Join(categories, ","))
	if len(unknown) > 0 {
		return fmt.Errorf("unknown categories: %s", strings.Join(unknown, ", "))
	}

	d.name = name
	d.slug = slug
	d.description = strings.TrimSpace(description)
	d.categories = dedupe(parsed)
	return nil
}

// Update replaces all editable fields.
func (d *Department) Update(name, slug, description string, categories []string) error {
	if err := d.apply(name, slug, description, categories); err != nil {
		return err
	}
	d.updatedAt = biztime.NowUTC()
	return nil
}

func dedupe(in []vo.Category) []vo.Category {
	seen := make(map[vo.Category]bool, len(in))
	out := make([]vo.Category, 0, len(in))
	for _, c := range in {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Slugify lowercases s and collapses runs of other characters into single hyphens.
func Slugify(s string) string {
	return strings.Trim(slugInvalidChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func (d *Department) ID() uint             { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) Slug() string         { return d.slug }
func (d *Department) Description() string  { return d.description }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) Categories() []vo.Category {
	out := make([]vo.Category, len(d.categories))
	copy(out, d.categories)
	return out
}

// CategoriesString is the comma-delimited storage form.
func (d *Department) CategoriesString() string {
	return vo.JoinCategories(d.categories)
}

func (d *Department) Handles(c vo.Category) bool {
	for _, own := range d.categories {
		if own == c {
			return true
		}
	}
	return false
}

func (d *Department) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("department ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("department ID cannot be zero")
	}
	d.id = id
	return nil
}
