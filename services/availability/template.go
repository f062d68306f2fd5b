// File: services/availability/template.go
package availability

import (
	"fmt"
	"sort"

	"pulmocare/models"
)

// Template operations are copy-on-write: each one returns a new
// WeeklyTemplate and never mutates its input, so a failed call leaves the
// caller's value untouched and the storage layer persists whole templates.
//
// Invariant maintained throughout: a day with a non-empty slot list is always
// present in WorkingDays, and a day whose last slot is removed is pruned.

func cloneTemplate(t models.WeeklyTemplate) models.WeeklyTemplate {
	out := models.WeeklyTemplate{
		WorkingDays:   append([]string(nil), t.WorkingDays...),
		ExcludedDates: append([]string(nil), t.ExcludedDates...),
	}
	if t.SlotsByDay != nil {
		out.SlotsByDay = make(map[string][]models.TimeInterval, len(t.SlotsByDay))
		for day, slots := range t.SlotsByDay {
			out.SlotsByDay[day] = append([]models.TimeInterval(nil), slots...)
		}
	}
	return out
}

func ensureSlotsMap(t *models.WeeklyTemplate) {
	if t.SlotsByDay == nil {
		t.SlotsByDay = make(map[string][]models.TimeInterval)
	}
}

func addWorkingDay(t *models.WeeklyTemplate, day string) {
	if !t.HasWorkingDay(day) {
		t.WorkingDays = append(t.WorkingDays, day)
	}
}

func removeWorkingDay(t *models.WeeklyTemplate, day string) {
	for i, d := range t.WorkingDays {
		if d == day {
			t.WorkingDays = append(t.WorkingDays[:i], t.WorkingDays[i+1:]...)
			return
		}
	}
}

// SetWorkingDays replaces the working-day set wholesale.
func SetWorkingDays(t models.WeeklyTemplate, days []string) models.WeeklyTemplate {
	out := cloneTemplate(t)
	out.WorkingDays = append([]string(nil), days...)
	return out
}

// SetExcludedDates replaces the excluded-date set wholesale.
func SetExcludedDates(t models.WeeklyTemplate, dates []string) models.WeeklyTemplate {
	out := cloneTemplate(t)
	out.ExcludedDates = append([]string(nil), dates...)
	return out
}

// SetDaySlots validates and replaces a single day's slot list. The whole call
// fails on the first invalid interval and no partial update is applied.
func SetDaySlots(t models.WeeklyTemplate, day string, raw []models.TimeInterval) (models.WeeklyTemplate, error) {
	if !ValidDayKey(day) {
		return t, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	validated := make([]models.TimeInterval, 0, len(raw))
	for _, iv := range raw {
		slot, err := NewInterval(iv.StartTime, iv.EndTime)
		if err != nil {
			return t, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		}
		validated = append(validated, slot)
	}
	out := cloneTemplate(t)
	ensureSlotsMap(&out)
	if len(validated) == 0 {
		delete(out.SlotsByDay, day)
		removeWorkingDay(&out, day)
		return out, nil
	}
	out.SlotsByDay[day] = validated
	addWorkingDay(&out, day)
	return out, nil
}

// AddSlot validates and appends one interval to a day. Duplicates are
// compared by value on both start and end.
func AddSlot(t models.WeeklyTemplate, day, start, end string) (models.WeeklyTemplate, error) {
	if !ValidDayKey(day) {
		return t, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	slot, err := NewInterval(start, end)
	if err != nil {
		return t, err
	}
	for _, existing := range t.SlotsByDay[day] {
		if existing.StartTime == slot.StartTime && existing.EndTime == slot.EndTime {
			return t, fmt.Errorf("%w: %s %s-%s", ErrDuplicateSlot, day, start, end)
		}
	}
	out := cloneTemplate(t)
	ensureSlotsMap(&out)
	out.SlotsByDay[day] = append(out.SlotsByDay[day], slot)
	addWorkingDay(&out, day)
	return out, nil
}

// RemoveSlot removes the first interval on the day whose start time matches.
// When the day's list empties, the day is dropped from both SlotsByDay and
// WorkingDays.
func RemoveSlot(t models.WeeklyTemplate, day, start string) (models.WeeklyTemplate, error) {
	if !ValidDayKey(day) {
		return t, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	slots := t.SlotsByDay[day]
	idx := -1
	for i, slot := range slots {
		if slot.StartTime == start {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t, fmt.Errorf("%w: %s %s", ErrSlotNotFound, day, start)
	}
	out := cloneTemplate(t)
	remaining := append(out.SlotsByDay[day][:idx], out.SlotsByDay[day][idx+1:]...)
	if len(remaining) == 0 {
		delete(out.SlotsByDay, day)
		removeWorkingDay(&out, day)
	} else {
		out.SlotsByDay[day] = remaining
	}
	return out, nil
}

// AppendBulk appends intervals per day, skipping value-duplicates of already
// present slots. Any invalid interval aborts the whole call.
func AppendBulk(t models.WeeklyTemplate, byDay map[string][]models.TimeInterval) (models.WeeklyTemplate, error) {
	out := cloneTemplate(t)
	ensureSlotsMap(&out)
	// Deterministic day order keeps failures reproducible.
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if !ValidDayKey(day) {
			return t, fmt.Errorf("%w: %q", ErrInvalidDay, day)
		}
		for _, iv := range byDay[day] {
			slot, err := NewInterval(iv.StartTime, iv.EndTime)
			if err != nil {
				return t, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
			}
			dup := false
			for _, existing := range out.SlotsByDay[day] {
				if existing.StartTime == slot.StartTime && existing.EndTime == slot.EndTime {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			out.SlotsByDay[day] = append(out.SlotsByDay[day], slot)
			addWorkingDay(&out, day)
		}
	}
	return out, nil
}

// ApplyStandardSchedule generates consecutive 30-minute slots covering
// [dailyStart, dailyEnd) for every listed day, replacing whatever those days
// held before. A trailing remainder shorter than one slot is dropped.
func ApplyStandardSchedule(t models.WeeklyTemplate, days []string, dailyStart, dailyEnd string) (models.WeeklyTemplate, error) {
	if !ValidTime(dailyStart) || !ValidTime(dailyEnd) {
		return t, fmt.Errorf("%w: %q-%q", ErrInvalidFormat, dailyStart, dailyEnd)
	}
	for _, day := range days {
		if !ValidDayKey(day) {
			return t, fmt.Errorf("%w: %q", ErrInvalidDay, day)
		}
	}
	var grid []models.TimeInterval
	for cur := MinutesOf(dailyStart); cur+SlotDuration <= MinutesOf(dailyEnd); cur += SlotDuration {
		start := fmt.Sprintf("%02d:%02d", cur/60, cur%60)
		grid = append(grid, models.TimeInterval{StartTime: start, EndTime: AddMinutes(start, SlotDuration)})
	}
	out := cloneTemplate(t)
	ensureSlotsMap(&out)
	for _, day := range days {
		if len(grid) == 0 {
			delete(out.SlotsByDay, day)
			removeWorkingDay(&out, day)
			continue
		}
		out.SlotsByDay[day] = append([]models.TimeInterval(nil), grid...)
		addWorkingDay(&out, day)
	}
	return out, nil
}

// SortDaySlots re-sorts one day's intervals by start time ascending.
func SortDaySlots(t models.WeeklyTemplate, day string) models.WeeklyTemplate {
	out := cloneTemplate(t)
	slots := out.SlotsByDay[day]
	sort.SliceStable(slots, func(i, j int) bool {
		return MinutesOf(slots[i].StartTime) < MinutesOf(slots[j].StartTime)
	})
	return out
}
