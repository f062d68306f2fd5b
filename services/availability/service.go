// File: services/availability/service.go
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"pulmocare/models"
	"pulmocare/utils"
)

func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, doctorID string) (*models.WeeklyTemplate, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	tpl := doctor.Availability
	return &tpl, nil
}

// SetAvailability merges a partial availability update: only supplied fields
// replace the corresponding template fields. A supplied slot map is validated
// in full before anything is applied.
func (s *DefaultAvailabilityService) SetAvailability(ctx context.Context, doctorID string, patch models.AvailabilityPatch) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	tpl := doctor.Availability
	if patch.WorkingDays != nil {
		for _, day := range patch.WorkingDays {
			if !ValidDayKey(day) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
			}
		}
		tpl = SetWorkingDays(tpl, patch.WorkingDays)
	}
	if patch.ExcludedDates != nil {
		tpl = SetExcludedDates(tpl, patch.ExcludedDates)
	}
	if patch.SlotsByDay != nil {
		tpl, err = replaceAllSlots(tpl, patch.SlotsByDay)
		if err != nil {
			return nil, err
		}
	}
	return s.persistTemplate(ctx, doctor, tpl)
}

// replaceAllSlots swaps the whole slot map, validating every interval first.
func replaceAllSlots(t models.WeeklyTemplate, byDay map[string][]models.TimeInterval) (models.WeeklyTemplate, error) {
	out := cloneTemplate(t)
	out.SlotsByDay = make(map[string][]models.TimeInterval, len(byDay))
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if !ValidDayKey(day) {
			return t, fmt.Errorf("%w: %q", ErrInvalidDay, day)
		}
		validated := make([]models.TimeInterval, 0, len(byDay[day]))
		for _, iv := range byDay[day] {
			slot, err := NewInterval(iv.StartTime, iv.EndTime)
			if err != nil {
				return t, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
			}
			validated = append(validated, slot)
		}
		if len(validated) == 0 {
			continue
		}
		out.SlotsByDay[day] = validated
		addWorkingDay(&out, day)
	}
	return out, nil
}

func (s *DefaultAvailabilityService) AddSlot(ctx context.Context, doctorID, day, start, end string) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	tpl, err := AddSlot(doctor.Availability, day, start, end)
	if err != nil {
		return nil, err
	}
	return s.persistTemplate(ctx, doctor, tpl)
}

func (s *DefaultAvailabilityService) RemoveSlot(ctx context.Context, doctorID, day, start string) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	tpl, err := RemoveSlot(doctor.Availability, day, start)
	if err != nil {
		return nil, err
	}
	return s.persistTemplate(ctx, doctor, tpl)
}

func (s *DefaultAvailabilityService) AppendSlots(ctx context.Context, doctorID string, byDay map[string][]models.TimeInterval) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	tpl, err := AppendBulk(doctor.Availability, byDay)
	if err != nil {
		return nil, err
	}
	return s.persistTemplate(ctx, doctor, tpl)
}

func (s *DefaultAvailabilityService) ApplyStandardSchedule(ctx context.Context, doctorID string, days []string, dailyStart, dailyEnd string) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	tpl, err := ApplyStandardSchedule(doctor.Availability, days, dailyStart, dailyEnd)
	if err != nil {
		return nil, err
	}
	return s.persistTemplate(ctx, doctor, tpl)
}

func (s *DefaultAvailabilityService) persistTemplate(ctx context.Context, doctor *models.Doctor, tpl models.WeeklyTemplate) (*models.Doctor, error) {
	if err := s.Doctors.UpdateAvailability(ctx, doctor.ID, tpl); err != nil {
		return nil, err
	}
	doctor.Availability = tpl
	utils.InvalidateDoctorSlots(ctx, s.Cache, doctor.ID)
	return doctor, nil
}

// GetAvailableSlots projects the bookable slots for one doctor and date,
// consulting the Redis cache first. Cache failures degrade to a direct read.
func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.TimeInterval, error) {
	logger := utils.GetLogger()
	key := utils.SlotCacheKey(doctorID, date)

	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var cached []models.TimeInterval
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return cached, nil
			}
			logger.Warn("Dropping undecodable slot cache entry", zap.String("key", key))
			s.Cache.Del(ctx, key)
		}
	}

	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	appts, err := s.Appointments.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(appts))
	for _, appt := range appts {
		booked[appt.StartTime] = true
	}

	free, err := ProjectAvailableSlots(doctor.Availability, date, booked)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if encoded, jsonErr := json.Marshal(free); jsonErr == nil {
			if err := s.Cache.Set(ctx, key, encoded, utils.SlotCacheTTL()).Err(); err != nil {
				logger.Warn("Failed to cache projected slots", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return free, nil
}
