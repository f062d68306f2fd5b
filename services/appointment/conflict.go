// File: services/appointment/conflict.go
package appointment

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"pulmocare/models"
	"pulmocare/services/availability"
	"pulmocare/utils"
)

// resolveEnd returns the effective end of a booking window: the caller's
// override when it is a well-formed HH:MM, otherwise start plus one slot.
// Legacy clients send oversized or malformed end times; they are advisory.
func resolveEnd(start, override string) string {
	if availability.ValidTime(override) {
		return override
	}
	return availability.AddMinutes(start, availability.SlotDuration)
}

// ValidateBooking decides whether a proposed booking is legal against the
// doctor's template and the existing appointments for that date.
//
// Check order is part of the contract: an excluded date short-circuits before
// the weekday check. The requested window may equal an authored slot or be
// contained within a larger one; containment supports callers that pass an
// oversized end time.
func ValidateBooking(tpl models.WeeklyTemplate, existing []models.Appointment, date, start, endOverride string) error {
	if !availability.ValidTime(start) {
		return fmt.Errorf("%w: %q", availability.ErrInvalidFormat, start)
	}
	end := resolveEnd(start, endOverride)

	if tpl.HasExcludedDate(date) {
		return ErrDoctorUnavailableDate
	}
	day, err := availability.DayKey(date)
	if err != nil {
		return err
	}
	if !tpl.HasWorkingDay(day) {
		return ErrDoctorNotWorkingThisDay
	}
	slots := tpl.SlotsByDay[day]
	if len(slots) == 0 {
		return ErrNoSlotsDefined
	}

	reqStart := availability.MinutesOf(start)
	reqEnd := availability.MinutesOf(end)
	offered := false
	for _, slot := range slots {
		if reqStart >= availability.MinutesOf(slot.StartTime) && reqEnd <= availability.MinutesOf(slot.EndTime) {
			offered = true
			break
		}
	}
	if !offered {
		return ErrSlotNotOffered
	}

	for _, appt := range existing {
		if appt.StartTime == start {
			return ErrSlotAlreadyBooked
		}
	}
	return nil
}

// CommitBooking removes the booked slot from the template after the
// appointment has been persisted. Validation and commit are two steps, not
// one transaction; the unique appointment index is the backstop for the gap.
func CommitBooking(tpl models.WeeklyTemplate, date, start string) (models.WeeklyTemplate, error) {
	day, err := availability.DayKey(date)
	if err != nil {
		return tpl, err
	}
	return availability.RemoveSlot(tpl, day, start)
}

// ReleaseBooking returns a cancelled appointment's slot to the template and
// re-sorts that day by start time. Double releases are no-ops. Release is
// best-effort: it must never block the surrounding cancellation, so every
// failure is logged and swallowed.
func ReleaseBooking(tpl models.WeeklyTemplate, date, start string) models.WeeklyTemplate {
	logger := utils.GetLogger()
	if !availability.ValidTime(start) {
		logger.Warn("Cannot restore slot with malformed start time",
			zap.String("date", date), zap.String("startTime", start))
		return tpl
	}
	day, err := availability.DayKey(date)
	if err != nil {
		logger.Warn("Cannot restore slot for malformed date",
			zap.String("date", date), zap.Error(err))
		return tpl
	}
	end := availability.AddMinutes(start, availability.SlotDuration)
	out, err := availability.AddSlot(tpl, day, start, end)
	if err != nil {
		if errors.Is(err, availability.ErrDuplicateSlot) {
			return tpl
		}
		logger.Warn("Failed to restore time slot",
			zap.String("day", day), zap.String("startTime", start), zap.Error(err))
		return tpl
	}
	return availability.SortDaySlots(out, day)
}
