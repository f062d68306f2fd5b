package appointment

import "errors"

// Booking validation errors. Each failure is returned before any write, so a
// rejected booking never mutates the template or the appointment store.
var (
	ErrDoctorUnavailableDate   = errors.New("doctor is unavailable on this date")
	ErrDoctorNotWorkingThisDay = errors.New("doctor does not work on this day")
	ErrNoSlotsDefined          = errors.New("doctor has no available time slots on this day")
	ErrSlotNotOffered          = errors.New("the requested time slot is not in the doctor's available time slots")
	ErrSlotAlreadyBooked       = errors.New("the doctor already has an appointment at this time")
	ErrMissingFields           = errors.New("doctorId, patientId, date and startTime are required")
)

// IsSlotUnavailable reports whether err is one of the booking-rejection
// outcomes a client can recover from by picking another time. Callers use it
// to distinguish "slot unavailable" from system errors.
func IsSlotUnavailable(err error) bool {
	return errors.Is(err, ErrDoctorUnavailableDate) ||
		errors.Is(err, ErrDoctorNotWorkingThisDay) ||
		errors.Is(err, ErrNoSlotsDefined) ||
		errors.Is(err, ErrSlotNotOffered) ||
		errors.Is(err, ErrSlotAlreadyBooked)
}
