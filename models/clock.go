package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used across collections.
const DateLayout = "2006-01-02"

// MinutesFromClock parses a "HH:MM" clock string into minutes from midnight.
func MinutesFromClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ClockFromMinutes renders minutes from midnight as "HH:MM".
func ClockFromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
