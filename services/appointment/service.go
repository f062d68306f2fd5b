// File: services/appointment/service.go
package appointment

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	appointmentRepo "pulmocare/database/repository/appointment"
	"pulmocare/models"
	"pulmocare/services/availability"
	"pulmocare/utils"
)

// Create books a new appointment. The appointment is always created as
// upcoming; validation runs entirely before any write. After the appointment
// is persisted the booked slot is removed from the doctor's template — a
// second, non-atomic step backed by the unique (doctorId, date, startTime)
// index on the appointment collection.
func (s *DefaultAppointmentService) Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	if appt.DoctorID == "" || appt.PatientID == "" || appt.Date == "" || appt.StartTime == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.Patients.GetByID(ctx, appt.PatientID); err != nil {
		return nil, err
	}
	doctor, err := s.Doctors.GetByID(ctx, appt.DoctorID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Appointments.FindByDoctorAndDate(ctx, appt.DoctorID, appt.Date)
	if err != nil {
		return nil, err
	}
	if err := ValidateBooking(doctor.Availability, existing, appt.Date, appt.StartTime, appt.EndTime); err != nil {
		return nil, err
	}

	appt.Status = models.AppointmentUpcoming
	appt.CreatedAt = s.now()
	if err := s.Appointments.Create(ctx, &appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateBooking) {
			// A concurrent booking won the race between validation and insert.
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	s.commitSlot(ctx, doctor.ID, doctor.Availability, appt.Date, appt.StartTime)
	utils.InvalidateDoctorSlotsForDate(ctx, s.Cache, appt.DoctorID, appt.Date)
	return &appt, nil
}

// commitSlot removes the booked interval from the doctor's template. With
// containment-based validation the requested start may sit inside a larger
// authored slot; in that case there is no exact-start interval to remove and
// the template is left as is.
func (s *DefaultAppointmentService) commitSlot(ctx context.Context, doctorID string, tpl models.WeeklyTemplate, date, start string) {
	logger := utils.GetLogger()
	updated, err := CommitBooking(tpl, date, start)
	if err != nil {
		logger.Warn("Booked slot not removed from template",
			zap.String("doctorID", doctorID), zap.String("date", date),
			zap.String("startTime", start), zap.Error(err))
		return
	}
	if err := s.Doctors.UpdateAvailability(ctx, doctorID, updated); err != nil {
		logger.Error("Failed to persist template after booking",
			zap.String("doctorID", doctorID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Appointments.GetByID(ctx, id)
}

func (s *DefaultAppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.Appointments.FindAll(ctx)
}

// ListByDoctor returns a doctor's appointments, optionally filtered by
// status. Status-filtered reads sweep first so stale upcoming records are
// reclassified lazily.
func (s *DefaultAppointmentService) ListByDoctor(ctx context.Context, doctorID, status string) ([]models.Appointment, error) {
	if status == "" {
		return s.Appointments.FindByDoctor(ctx, doctorID)
	}
	if _, err := s.SweepStatuses(ctx); err != nil {
		return nil, err
	}
	return s.Appointments.FindByDoctorAndStatus(ctx, doctorID, status)
}

func (s *DefaultAppointmentService) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return s.Appointments.FindByDate(ctx, date)
}

func (s *DefaultAppointmentService) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return s.Appointments.FindByDoctorAndDate(ctx, doctorID, date)
}

// ListTodayByDoctor returns the doctor's appointments for the current date,
// sorted by start time. Records with a malformed start time sort last.
func (s *DefaultAppointmentService) ListTodayByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	today := s.now().Format("2006-01-02")
	appts, err := s.Appointments.FindByDoctorAndDate(ctx, doctorID, today)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(appts, func(i, j int) bool {
		return startMinutes(&appts[i]) < startMinutes(&appts[j])
	})
	return appts, nil
}

// CurrentByDoctor returns the appointment whose window covers the current
// moment, if the doctor has one. The window is start to start+30m unless the
// record carries a well-formed explicit end.
func (s *DefaultAppointmentService) CurrentByDoctor(ctx context.Context, doctorID string) (*models.Appointment, error) {
	now := s.now()
	today := now.Format("2006-01-02")
	nowMin := availability.MinutesOf(now.Format("15:04"))

	appts, err := s.Appointments.FindByDoctorAndDate(ctx, doctorID, today)
	if err != nil {
		return nil, err
	}
	for i := range appts {
		appt := appts[i]
		if !availability.ValidTime(appt.StartTime) {
			continue
		}
		start := availability.MinutesOf(appt.StartTime)
		end := availability.MinutesOf(resolveEnd(appt.StartTime, appt.EndTime))
		if start <= nowMin && nowMin < end {
			return &appt, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func startMinutes(appt *models.Appointment) int {
	if !availability.ValidTime(appt.StartTime) {
		return 24 * 60
	}
	return availability.MinutesOf(appt.StartTime)
}

func (s *DefaultAppointmentService) ListByPatient(ctx context.Context, patientID, status string) ([]models.Appointment, error) {
	if status == "" {
		return s.Appointments.FindByPatient(ctx, patientID)
	}
	if _, err := s.SweepStatuses(ctx); err != nil {
		return nil, err
	}
	return s.Appointments.FindByPatientAndStatus(ctx, patientID, status)
}

// Update applies a partial edit. When the date or start time changes, the new
// window is re-validated against the doctor's current template before any
// field is applied. The old slot is deliberately not released first; whether
// a patient may move an appointment into the slot freed by the move itself is
// an open product decision.
func (s *DefaultAppointmentService) Update(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newDate := appt.Date
	if patch.Date != nil {
		newDate = *patch.Date
	}
	newStart := appt.StartTime
	if patch.StartTime != nil {
		newStart = *patch.StartTime
	}
	timeChanged := newDate != appt.Date || newStart != appt.StartTime

	if timeChanged {
		doctor, err := s.Doctors.GetByID(ctx, appt.DoctorID)
		if err != nil {
			return nil, err
		}
		existing, err := s.Appointments.FindByDoctorAndDate(ctx, appt.DoctorID, newDate)
		if err != nil {
			return nil, err
		}
		endOverride := appt.EndTime
		if patch.EndTime != nil {
			endOverride = *patch.EndTime
		}
		if err := ValidateBooking(doctor.Availability, existing, newDate, newStart, endOverride); err != nil {
			return nil, err
		}
	}

	oldDate := appt.Date
	applyAppointmentPatch(appt, patch)
	if err := s.Appointments.Update(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateBooking) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	if timeChanged {
		utils.InvalidateDoctorSlotsForDate(ctx, s.Cache, appt.DoctorID, oldDate)
		utils.InvalidateDoctorSlotsForDate(ctx, s.Cache, appt.DoctorID, appt.Date)
	}
	return appt, nil
}

func applyAppointmentPatch(appt *models.Appointment, patch models.AppointmentPatch) {
	if patch.Date != nil {
		appt.Date = *patch.Date
	}
	if patch.StartTime != nil {
		appt.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		appt.EndTime = *patch.EndTime
	}
	if patch.Reason != nil {
		appt.Reason = *patch.Reason
	}
	if patch.Location != nil {
		appt.Location = *patch.Location
	}
	if patch.Diagnosis != nil {
		appt.Diagnosis = *patch.Diagnosis
	}
	if patch.Notes != nil {
		appt.Notes = *patch.Notes
	}
	if patch.Plan != nil {
		appt.Plan = *patch.Plan
	}
	if patch.Prescription != nil {
		appt.Prescription = *patch.Prescription
	}
	if patch.ReportPending != nil {
		appt.ReportPending = *patch.ReportPending
	}
	if patch.IsVaccine != nil {
		appt.IsVaccine = *patch.IsVaccine
	}
}

// Cancel deletes the appointment and returns its slot to the doctor's
// template. Slot restoration is best-effort; once the appointment is gone the
// cancellation has succeeded from the caller's point of view.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id string) error {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Appointments.Delete(ctx, id); err != nil {
		return err
	}
	s.restoreSlot(ctx, appt)
	utils.InvalidateDoctorSlotsForDate(ctx, s.Cache, appt.DoctorID, appt.Date)
	return nil
}

func (s *DefaultAppointmentService) restoreSlot(ctx context.Context, appt *models.Appointment) {
	logger := utils.GetLogger()
	doctor, err := s.Doctors.GetByID(ctx, appt.DoctorID)
	if err != nil {
		logger.Warn("Cannot restore slot, doctor lookup failed",
			zap.String("doctorID", appt.DoctorID), zap.Error(err))
		return
	}
	updated := ReleaseBooking(doctor.Availability, appt.Date, appt.StartTime)
	if err := s.Doctors.UpdateAvailability(ctx, doctor.ID, updated); err != nil {
		logger.Warn("Failed to persist restored slot",
			zap.String("doctorID", doctor.ID), zap.Error(err))
	}
}

// MarkPast forces an appointment into the past state, independent of the
// time-driven sweep.
func (s *DefaultAppointmentService) MarkPast(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	appt.Status = models.AppointmentPast
	if err := s.Appointments.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// SweepStatuses transitions every upcoming appointment whose date/time has
// passed to the past state. Idempotent and safe to call from any read path.
func (s *DefaultAppointmentService) SweepStatuses(ctx context.Context) (int, error) {
	now := s.now()
	today := now.Format("2006-01-02")
	clockTime := now.Format("15:04")

	upcoming, err := s.Appointments.FindByStatus(ctx, models.AppointmentUpcoming)
	if err != nil {
		return 0, err
	}

	logger := utils.GetLogger()
	swept := 0
	for i := range upcoming {
		appt := &upcoming[i]
		if !appointmentHasPassed(appt, today, clockTime) {
			continue
		}
		appt.Status = models.AppointmentPast
		if err := s.Appointments.Update(ctx, appt); err != nil {
			logger.Warn("Failed to mark appointment as past",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			continue
		}
		swept++
	}
	return swept, nil
}

func appointmentHasPassed(appt *models.Appointment, today, clockTime string) bool {
	if appt.Date < today {
		return true
	}
	if appt.Date != today {
		return false
	}
	if !availability.ValidTime(appt.StartTime) {
		return false
	}
	return availability.MinutesOf(appt.StartTime) < availability.MinutesOf(clockTime)
}

// CheckSlot reports whether a proposed window is bookable. Booking-rejection
// outcomes map to false; system errors propagate.
func (s *DefaultAppointmentService) CheckSlot(ctx context.Context, doctorID, date, start, end string) (bool, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return false, err
	}
	existing, err := s.Appointments.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return false, err
	}
	if err := ValidateBooking(doctor.Availability, existing, date, start, end); err != nil {
		if IsSlotUnavailable(err) || errors.Is(err, availability.ErrInvalidFormat) || errors.Is(err, availability.ErrInvalidDate) {
			return false, nil
		}
		return false, fmt.Errorf("slot check failed: %w", err)
	}
	return true, nil
}
