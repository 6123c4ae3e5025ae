package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const MaxNameLength = 150

// NormalizePersonName collapses inner whitespace and title-cases each word.
func NormalizePersonName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if len(name) > MaxNameLength {
		return "", fmt.Errorf("name cannot exceed %d characters", MaxNameLength)
	}
	return cases.Title(language.Und).String(strings.ToLower(name)), nil
}
