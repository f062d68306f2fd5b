package availability

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pulmocare/models"
)

// SlotDuration is the fixed length of every bookable slot, in minutes.
const SlotDuration = 30

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTime reports whether s is a well-formed 24-hour HH:MM string.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// NewInterval validates a start/end pair and returns it as a TimeInterval.
// The pair must be well-formed HH:MM strings exactly SlotDuration minutes
// apart. Minutes are compared as hour*60+minute with no day wraparound, so an
// end time numerically earlier than the start is an invalid duration, not an
// overnight slot.
func NewInterval(start, end string) (models.TimeInterval, error) {
	if !ValidTime(start) || !ValidTime(end) {
		return models.TimeInterval{}, fmt.Errorf("%w: %q-%q", ErrInvalidFormat, start, end)
	}
	if MinutesOf(end)-MinutesOf(start) != SlotDuration {
		return models.TimeInterval{}, fmt.Errorf("%w: %q-%q", ErrInvalidDuration, start, end)
	}
	return models.TimeInterval{StartTime: start, EndTime: end}, nil
}

// MinutesOf converts a validated HH:MM string to minutes from midnight.
func MinutesOf(t string) int {
	parts := strings.SplitN(t, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// AddMinutes returns the HH:MM string mins minutes after the validated start.
func AddMinutes(start string, mins int) string {
	total := MinutesOf(start) + mins
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
