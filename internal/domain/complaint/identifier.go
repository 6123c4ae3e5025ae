package complaint

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DefaultIDPrefix starts every public complaint identifier.
const DefaultIDPrefix = "HA"

// IdentifierGenerator proposes the next identifier for a year. The proposal is only
// a candidate: uniqueness is enforced by the store, and callers retry on conflict.
type IdentifierGenerator interface {
	Next(ctx context.Context, year int) (string, error)
}

// YearPrefix returns the identifier prefix shared by every complaint of year, e.g. "HA-2025-".
func YearPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

// FormatComplaintID renders a sequence zero-padded to at least three digits.
// Sequences above 999 simply grow wider.
func FormatComplaintID(prefix string, year, seq int) string {
	return fmt.Sprintf("%s%03d", YearPrefix(prefix, year), seq)
}

// ParseSequence extracts the numeric suffix of id when it belongs to prefix and year.
func ParseSequence(id, prefix string, year int) (int, bool) {
	suffix, ok := strings.CutPrefix(id, YearPrefix(prefix, year))
	if !ok || suffix == "" {
		return 0, false
	}
	seq, err := strconv.Atoi(suffix)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// ValidateComplaintID checks the general PREFIX-YYYY-NNN shape without fixing the year.
func ValidateComplaintID(id, prefix string) error {
	parts := strings.Split(id, "-")
	if len(parts) != 3 || parts[0] != prefix {
		return fmt.Errorf("complaint id %q does not match %s-YYYY-NNN", id, prefix)
	}
	if year, err := strconv.Atoi(parts[1]); err != nil || len(parts[1]) != 4 || year <= 0 {
		return fmt.Errorf("complaint id %q has an invalid year", id)
	}
	if len(parts[2]) < 3 {
		return fmt.Errorf("complaint id %q has a short sequence", id)
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return fmt.Errorf("complaint id %q has a non-numeric sequence", id)
	}
	return nil
}
