package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Regular season runs weeks 1-18; the postseason extends through week 22.
const (
	MinWeek = 1
	MaxWeek = 22
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekKey builds the canonical season-week key used by snapshots and caches.
func WeekKey(season, week int) string {
	return fmt.Sprintf("%d-%02d", season, week)
}

// ParseWeekKey splits a season-week key back into its parts.
func ParseWeekKey(key string) (season, week int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed week key %q", key)
	}
	season, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed week key %q: %w", key, err)
	}
	week, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed week key %q: %w", key, err)
	}
	return season, week, nil
}

// ClampWeek forces a week number into the valid NFL range.
func ClampWeek(week int) int {
	if week < MinWeek {
		return MinWeek
	}
	if week > MaxWeek {
		return MaxWeek
	}
	return week
}

// SeasonFor returns the NFL season a date belongs to. Games played in
// January and February count toward the prior calendar year's season.
func SeasonFor(t time.Time) int {
	if t.Month() < time.March {
		return t.Year() - 1
	}
	return t.Year()
}
