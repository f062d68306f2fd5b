package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulmocare/models"
)

func templateFixture() models.WeeklyTemplate {
	return models.WeeklyTemplate{
		WorkingDays: []string{"mon"},
		SlotsByDay: map[string][]models.TimeInterval{
			"mon": {{StartTime: "09:00", EndTime: "09:30"}},
		},
		ExcludedDates: []string{"2025-12-25"},
	}
}

func TestAddSlotThenRemoveSlotRoundTrip(t *testing.T) {
	tpl := templateFixture()

	added, err := AddSlot(tpl, "mon", "10:00", "10:30")
	require.NoError(t, err)
	require.Len(t, added.SlotsByDay["mon"], 2)

	removed, err := RemoveSlot(added, "mon", "10:00")
	require.NoError(t, err)
	assert.Equal(t, tpl.SlotsByDay["mon"], removed.SlotsByDay["mon"])
	assert.Equal(t, tpl.WorkingDays, removed.WorkingDays)
}

func TestAddSlotIsCopyOnWrite(t *testing.T) {
	tpl := templateFixture()

	_, err := AddSlot(tpl, "mon", "10:00", "10:30")
	require.NoError(t, err)
	assert.Len(t, tpl.SlotsByDay["mon"], 1, "input template must not be mutated")
}

func TestAddSlotRejectsDuplicateByValue(t *testing.T) {
	tpl := templateFixture()

	_, err := AddSlot(tpl, "mon", "09:00", "09:30")
	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestAddSlotEnsuresWorkingDay(t *testing.T) {
	tpl := templateFixture()

	out, err := AddSlot(tpl, "tue", "09:00", "09:30")
	require.NoError(t, err)
	assert.True(t, out.HasWorkingDay("tue"))
}

func TestRemoveSlotPrunesEmptyDay(t *testing.T) {
	tpl := templateFixture()

	out, err := RemoveSlot(tpl, "mon", "09:00")
	require.NoError(t, err)
	assert.False(t, out.HasWorkingDay("mon"))
	_, present := out.SlotsByDay["mon"]
	assert.False(t, present)
}

func TestRemoveSlotNotFound(t *testing.T) {
	tpl := templateFixture()

	_, err := RemoveSlot(tpl, "mon", "11:00")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSetDaySlotsFailsWholeCallOnInvalidInterval(t *testing.T) {
	tpl := templateFixture()

	_, err := SetDaySlots(tpl, "tue", []models.TimeInterval{
		{StartTime: "09:00", EndTime: "09:30"},
		{StartTime: "10:00", EndTime: "11:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.False(t, tpl.HasWorkingDay("tue"), "no partial update on failure")
}

func TestAppendBulkSkipsDuplicatesButAbortsOnInvalid(t *testing.T) {
	tpl := templateFixture()

	out, err := AppendBulk(tpl, map[string][]models.TimeInterval{
		"mon": {
			{StartTime: "09:00", EndTime: "09:30"}, // duplicate, skipped
			{StartTime: "10:00", EndTime: "10:30"},
		},
		"wed": {{StartTime: "14:00", EndTime: "14:30"}},
	})
	require.NoError(t, err)
	assert.Len(t, out.SlotsByDay["mon"], 2)
	assert.Len(t, out.SlotsByDay["wed"], 1)
	assert.True(t, out.HasWorkingDay("wed"))

	_, err = AppendBulk(tpl, map[string][]models.TimeInterval{
		"thu": {{StartTime: "14:00", EndTime: "15:30"}},
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestApplyStandardScheduleGeneratesGridAndDropsRemainder(t *testing.T) {
	tpl := models.WeeklyTemplate{}

	out, err := ApplyStandardSchedule(tpl, []string{"mon", "tue"}, "09:00", "11:15")
	require.NoError(t, err)

	want := []models.TimeInterval{
		{StartTime: "09:00", EndTime: "09:30"},
		{StartTime: "09:30", EndTime: "10:00"},
		{StartTime: "10:00", EndTime: "10:30"},
		{StartTime: "10:30", EndTime: "11:00"},
		// 11:00-11:15 remainder dropped
	}
	assert.Equal(t, want, out.SlotsByDay["mon"])
	assert.Equal(t, want, out.SlotsByDay["tue"])
	assert.ElementsMatch(t, []string{"mon", "tue"}, out.WorkingDays)
}

func TestApplyStandardScheduleReplacesExistingDays(t *testing.T) {
	tpl := templateFixture()

	out, err := ApplyStandardSchedule(tpl, []string{"mon"}, "14:00", "15:00")
	require.NoError(t, err)
	want := []models.TimeInterval{
		{StartTime: "14:00", EndTime: "14:30"},
		{StartTime: "14:30", EndTime: "15:00"},
	}
	assert.Equal(t, want, out.SlotsByDay["mon"])
}

func TestApplyStandardScheduleRejectsBadTimeFormat(t *testing.T) {
	tpl := models.WeeklyTemplate{}

	_, err := ApplyStandardSchedule(tpl, []string{"mon"}, "9am", "5pm")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTemplateOpsRejectUnknownDayToken(t *testing.T) {
	tpl := templateFixture()

	_, err := AddSlot(tpl, "monday", "10:00", "10:30")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = RemoveSlot(tpl, "Mon", "09:00")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = SetDaySlots(tpl, "tuesday", []models.TimeInterval{{StartTime: "09:00", EndTime: "09:30"}})
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = AppendBulk(tpl, map[string][]models.TimeInterval{
		"wednesday": {{StartTime: "09:00", EndTime: "09:30"}},
	})
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = ApplyStandardSchedule(tpl, []string{"mon", "funday"}, "09:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidDay)
	assert.Len(t, tpl.SlotsByDay["mon"], 1, "no partial update on failure")
}

func TestSetWorkingDaysAndExcludedDatesReplaceWholesale(t *testing.T) {
	tpl := templateFixture()

	out := SetWorkingDays(tpl, []string{"wed", "fri"})
	assert.Equal(t, []string{"wed", "fri"}, out.WorkingDays)
	assert.Equal(t, []string{"mon"}, tpl.WorkingDays)

	out = SetExcludedDates(tpl, []string{"2026-01-01"})
	assert.Equal(t, []string{"2026-01-01"}, out.ExcludedDates)
}
