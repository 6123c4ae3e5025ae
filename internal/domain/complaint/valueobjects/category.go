package valueobjects

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryRoad        Category = "road"
	CategoryWaste       Category = "waste"
	CategoryWater       Category = "water"
	CategoryElectricity Category = "electricity"
	CategoryStreetlight Category = "streetlight"
	CategoryOther       Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryRoad,
	CategoryWaste,
	CategoryWater,
	CategoryElectricity,
	CategoryStreetlight,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryRoad:        "Road Issues",
	CategoryWaste:       "Waste Management",
	CategoryWater:       "Water Problems",
	CategoryElectricity: "Electricity",
	CategoryStreetlight: "Streetlight",
	CategoryOther:       "Other Issues",
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the human-readable name shown next to the code.
func (c Category) Label() string {
	return categoryLabels[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// ParseCategoryList splits a comma-delimited list, trimming blanks and skipping empties.
// Unknown codes are returned in the second slice so callers can reject them.
func ParseCategoryList(raw string) (valid []Category, unknown []string) {
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if c := Category(part); c.IsValid() {
			valid = append(valid, c)
		} else {
			unknown = append(unknown, part)
		}
	}
	return valid, unknown
}

// JoinCategories renders categories in the comma-delimited storage form.
func JoinCategories(categories []Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
