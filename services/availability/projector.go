package availability

import "pulmocare/models"

// ProjectAvailableSlots derives the bookable slots for one doctor and date:
// nothing on an excluded date or an off-day, otherwise the day's authored
// intervals minus those whose start time is already booked.
//
// Only the doctor-authored intervals are returned, in authored order. The
// projector must never regenerate a 30-minute grid between the day's earliest
// and latest boundaries: doing so invents bookable gaps between disjoint
// morning/afternoon blocks.
func ProjectAvailableSlots(t models.WeeklyTemplate, date string, bookedStarts map[string]bool) ([]models.TimeInterval, error) {
	if t.HasExcludedDate(date) {
		return nil, nil
	}
	day, err := DayKey(date)
	if err != nil {
		return nil, err
	}
	if !t.HasWorkingDay(day) {
		return nil, nil
	}
	authored := t.SlotsByDay[day]
	free := make([]models.TimeInterval, 0, len(authored))
	for _, slot := range authored {
		if bookedStarts[slot.StartTime] {
			continue
		}
		free = append(free, slot)
	}
	return free, nil
}
