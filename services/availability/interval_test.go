package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntervalAcceptsValidHalfHourPairs(t *testing.T) {
	cases := []struct{ start, end string }{
		{"09:00", "09:30"},
		{"9:00", "9:30"},
		{"00:00", "00:30"},
		{"23:00", "23:30"},
		{"13:45", "14:15"},
	}
	for _, tc := range cases {
		iv, err := NewInterval(tc.start, tc.end)
		require.NoError(t, err, "%s-%s", tc.start, tc.end)
		assert.Equal(t, tc.start, iv.StartTime)
		assert.Equal(t, tc.end, iv.EndTime)
	}
}

func TestNewIntervalRejectsBadFormat(t *testing.T) {
	cases := []struct{ start, end string }{
		{"24:00", "24:30"},
		{"09:60", "10:30"},
		{"9:0", "9:30"},
		{"0900", "0930"},
		{"", "09:30"},
		{"09:00", ""},
		{"09:00 AM", "09:30 AM"},
	}
	for _, tc := range cases {
		_, err := NewInterval(tc.start, tc.end)
		assert.ErrorIs(t, err, ErrInvalidFormat, "%s-%s", tc.start, tc.end)
	}
}

func TestNewIntervalRejectsWrongDuration(t *testing.T) {
	cases := []struct{ start, end string }{
		{"09:00", "09:45"},
		{"09:00", "10:00"},
		{"09:00", "09:00"},
		{"09:30", "09:00"}, // negative, not an overnight slot
		{"23:45", "00:15"}, // no day wraparound
	}
	for _, tc := range cases {
		_, err := NewInterval(tc.start, tc.end)
		assert.ErrorIs(t, err, ErrInvalidDuration, "%s-%s", tc.start, tc.end)
	}
}

func TestMinutesOfAndAddMinutes(t *testing.T) {
	assert.Equal(t, 0, MinutesOf("00:00"))
	assert.Equal(t, 570, MinutesOf("09:30"))
	assert.Equal(t, 1439, MinutesOf("23:59"))
	assert.Equal(t, "09:30", AddMinutes("09:00", 30))
	assert.Equal(t, "10:15", AddMinutes("9:45", 30))
}

func TestDayKey(t *testing.T) {
	day, err := DayKey("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, "mon", day)

	day, err = DayKey("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, "sun", day)

	_, err = DayKey("06-01-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
