package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulmocare/models"
	"pulmocare/services/availability"
)

// 2025-01-06 is a Monday, 2025-01-07 a Tuesday.
const (
	mondayDate  = "2025-01-06"
	tuesdayDate = "2025-01-07"
)

func bookingTemplate() models.WeeklyTemplate {
	return models.WeeklyTemplate{
		WorkingDays: []string{"mon"},
		SlotsByDay: map[string][]models.TimeInterval{
			"mon": {
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "10:00", EndTime: "10:30"},
			},
		},
	}
}

func TestResolveEnd(t *testing.T) {
	assert.Equal(t, "10:00", resolveEnd("09:00", "10:00"))
	assert.Equal(t, "09:30", resolveEnd("09:00", ""))
	assert.Equal(t, "09:30", resolveEnd("09:00", "10:00 PM"))
}

func TestValidateBookingAcceptsOfferedSlot(t *testing.T) {
	err := ValidateBooking(bookingTemplate(), nil, mondayDate, "09:00", "")
	assert.NoError(t, err)
}

func TestValidateBookingRejectsMalformedStart(t *testing.T) {
	err := ValidateBooking(bookingTemplate(), nil, mondayDate, "9am", "")
	assert.ErrorIs(t, err, availability.ErrInvalidFormat)
}

func TestValidateBookingRejectsMalformedDate(t *testing.T) {
	err := ValidateBooking(bookingTemplate(), nil, "06/01/2025", "09:00", "")
	assert.ErrorIs(t, err, availability.ErrInvalidDate)
}

// An excluded date wins over every other rejection, including the weekday
// check: Tuesday is not a working day here, but the exclusion is reported.
func TestValidateBookingExcludedDateShortCircuits(t *testing.T) {
	tpl := bookingTemplate()
	tpl.ExcludedDates = []string{tuesdayDate}

	err := ValidateBooking(tpl, nil, tuesdayDate, "09:00", "")
	assert.ErrorIs(t, err, ErrDoctorUnavailableDate)
}

func TestValidateBookingRejectsOffDay(t *testing.T) {
	err := ValidateBooking(bookingTemplate(), nil, tuesdayDate, "09:00", "")
	assert.ErrorIs(t, err, ErrDoctorNotWorkingThisDay)
}

func TestValidateBookingRejectsWorkingDayWithoutSlots(t *testing.T) {
	tpl := models.WeeklyTemplate{WorkingDays: []string{"mon"}}

	err := ValidateBooking(tpl, nil, mondayDate, "09:00", "")
	assert.ErrorIs(t, err, ErrNoSlotsDefined)
}

func TestValidateBookingContainmentInsideLargerSlot(t *testing.T) {
	// Legacy templates can carry oversized intervals; a window inside one is
	// still offered.
	tpl := models.WeeklyTemplate{
		WorkingDays: []string{"mon"},
		SlotsByDay: map[string][]models.TimeInterval{
			"mon": {{StartTime: "09:00", EndTime: "11:00"}},
		},
	}

	assert.NoError(t, ValidateBooking(tpl, nil, mondayDate, "09:30", "10:00"))
	assert.ErrorIs(t, ValidateBooking(tpl, nil, mondayDate, "10:45", "11:15"), ErrSlotNotOffered)
}

func TestValidateBookingRejectsWindowCrossingSlotEnd(t *testing.T) {
	err := ValidateBooking(bookingTemplate(), nil, mondayDate, "09:00", "11:00")
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestValidateBookingRejectsAlreadyBookedStart(t *testing.T) {
	existing := []models.Appointment{{DoctorID: "d1", Date: mondayDate, StartTime: "09:00"}}

	err := ValidateBooking(bookingTemplate(), existing, mondayDate, "09:00", "")
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestCommitBookingRemovesExactSlot(t *testing.T) {
	out, err := CommitBooking(bookingTemplate(), mondayDate, "09:00")
	require.NoError(t, err)
	assert.Equal(t, []models.TimeInterval{{StartTime: "10:00", EndTime: "10:30"}}, out.SlotsByDay["mon"])
}

func TestCommitBookingPrunesEmptiedDay(t *testing.T) {
	tpl := models.WeeklyTemplate{
		WorkingDays: []string{"mon"},
		SlotsByDay: map[string][]models.TimeInterval{
			"mon": {{StartTime: "09:00", EndTime: "09:30"}},
		},
	}

	out, err := CommitBooking(tpl, mondayDate, "09:00")
	require.NoError(t, err)
	assert.False(t, out.HasWorkingDay("mon"))
}

func TestReleaseBookingRestoresSlotSorted(t *testing.T) {
	tpl := models.WeeklyTemplate{
		WorkingDays: []string{"mon"},
		SlotsByDay: map[string][]models.TimeInterval{
			"mon": {{StartTime: "10:00", EndTime: "10:30"}},
		},
	}

	out := ReleaseBooking(tpl, mondayDate, "09:00")
	assert.Equal(t, []models.TimeInterval{
		{StartTime: "09:00", EndTime: "09:30"},
		{StartTime: "10:00", EndTime: "10:30"},
	}, out.SlotsByDay["mon"])
}

func TestReleaseBookingDoubleReleaseIsNoOp(t *testing.T) {
	tpl := bookingTemplate()

	out := ReleaseBooking(tpl, mondayDate, "09:00")
	assert.Equal(t, tpl.SlotsByDay["mon"], out.SlotsByDay["mon"])
}

func TestReleaseBookingToleratesBadInput(t *testing.T) {
	tpl := bookingTemplate()

	out := ReleaseBooking(tpl, mondayDate, "bogus")
	assert.Equal(t, tpl, out)

	out = ReleaseBooking(tpl, "not-a-date", "09:00")
	assert.Equal(t, tpl, out)
}
