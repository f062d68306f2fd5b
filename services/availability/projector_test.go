package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulmocare/models"
)

// 2025-01-06 is a Monday.
const monday = "2025-01-06"

func projectorFixture() models.WeeklyTemplate {
	return models.WeeklyTemplate{
		WorkingDays: []string{"mon"},
		SlotsByDay: map[string][]models.TimeInterval{
			"mon": {
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "09:30", EndTime: "10:00"},
				{StartTime: "14:00", EndTime: "14:30"},
			},
		},
		ExcludedDates: []string{"2025-01-13"},
	}
}

func TestProjectAvailableSlotsExcludedDate(t *testing.T) {
	slots, err := ProjectAvailableSlots(projectorFixture(), "2025-01-13", nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestProjectAvailableSlotsOffDay(t *testing.T) {
	// 2025-01-07 is a Tuesday; the doctor only works Mondays.
	slots, err := ProjectAvailableSlots(projectorFixture(), "2025-01-07", nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestProjectAvailableSlotsFiltersBookedStarts(t *testing.T) {
	slots, err := ProjectAvailableSlots(projectorFixture(), monday, map[string]bool{"09:30": true})
	require.NoError(t, err)
	assert.Equal(t, []models.TimeInterval{
		{StartTime: "09:00", EndTime: "09:30"},
		{StartTime: "14:00", EndTime: "14:30"},
	}, slots)
}

// Regression: the projector must return only the authored intervals and never
// fill the 10:00-14:00 gap between the morning and afternoon blocks.
func TestProjectAvailableSlotsDoesNotInterpolate(t *testing.T) {
	tpl := models.WeeklyTemplate{
		WorkingDays: []string{"mon"},
		SlotsByDay: map[string][]models.TimeInterval{
			"mon": {
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "14:00", EndTime: "14:30"},
			},
		},
	}

	slots, err := ProjectAvailableSlots(tpl, monday, nil)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.Contains(t, tpl.SlotsByDay["mon"], slot)
	}
}

func TestProjectAvailableSlotsPreservesAuthoredOrder(t *testing.T) {
	tpl := models.WeeklyTemplate{
		WorkingDays: []string{"mon"},
		SlotsByDay: map[string][]models.TimeInterval{
			"mon": {
				{StartTime: "14:00", EndTime: "14:30"},
				{StartTime: "09:00", EndTime: "09:30"},
			},
		},
	}

	slots, err := ProjectAvailableSlots(tpl, monday, nil)
	require.NoError(t, err)
	assert.Equal(t, "14:00", slots[0].StartTime, "authored order is not re-sorted")
}

func TestProjectAvailableSlotsRejectsMalformedDate(t *testing.T) {
	_, err := ProjectAvailableSlots(projectorFixture(), "Jan 6 2025", nil)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
