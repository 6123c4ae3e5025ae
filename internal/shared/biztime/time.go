// Package biztime keeps storage in UTC while letting calendar questions
// (which day, which year) be answered in the configured business timezone.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is used when no timezone is configured.
	DefaultTimezone = "UTC"

	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
)

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. An empty name selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(err)
	}
}

// Location returns the business timezone, UTC when Init was never called.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// YearOf returns the calendar year of t in the business timezone.
func YearOf(t time.Time) int {
	return t.In(Location()).Year()
}

// StartOfDayUTC returns business-timezone midnight of t's day, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// ParseDate parses YYYY-MM-DD as business-timezone midnight and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

// NextDayUTC returns the start of the business day after the day starting at dayStart.
func NextDayUTC(dayStart time.Time) time.Time {
	b := dayStart.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day()+1, 0, 0, 0, 0, Location()).UTC()
}

// FormatDate renders the business-timezone calendar date of t.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// ToBizTimezone converts a UTC time to business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}
