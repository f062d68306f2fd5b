package availability

import (
	"fmt"
	"time"
)

// dayKeys maps time.Weekday ordinals to the three-letter lowercase tokens
// used throughout doctor availability templates. Fixed tokens keep the
// derivation locale-independent.
var dayKeys = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// DayKey derives the weekday token for an ISO date string.
func DayKey(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return dayKeys[int(t.Weekday())], nil
}

// ValidDayKey reports whether day is one of the seven weekday tokens.
func ValidDayKey(day string) bool {
	for _, d := range dayKeys {
		if d == day {
			return true
		}
	}
	return false
}
