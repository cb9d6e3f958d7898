// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only applied
// when dates are rendered for users.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Seoul"

	// DateLayout renders calendar dates.
	DateLayout = "2006-01-02"
)

var (
	bizLocation *time.Location
	mu          sync.RWMutex
)

// Init sets the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Seoul.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
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

// Location returns the business timezone location.
// If not explicitly initialized, the default timezone is loaded.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		// Without tzdata fall back to a fixed KST offset.
		return time.FixedZone("KST", 9*60*60)
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToBizTimezone converts a UTC time to business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// FormatInBizTimezone formats a UTC time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// FormatDate renders the business-timezone calendar date of t.
func FormatDate(t time.Time) string {
	return FormatInBizTimezone(t, DateLayout)
}

// FormatMetadataTime formats a UTC time for storage in metadata using RFC3339 format.
func FormatMetadataTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
