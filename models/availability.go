package models

// TimeInterval represents a single bookable half-hour window.
// Both fields are wall-clock times in 24-hour "HH:MM" format.
type TimeInterval struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// WeeklyTemplate holds a doctor's recurring weekly availability: the weekdays
// they work, the authored slots for each weekday, and calendar dates on which
// they are wholly unavailable regardless of the weekly schedule.
//
// Day keys are three-letter lowercase tokens: mon, tue, wed, thu, fri, sat, sun.
// Dates are ISO "2006-01-02" strings.
type WeeklyTemplate struct {
	WorkingDays   []string                  `bson:"availableDays" json:"availableDays"`
	SlotsByDay    map[string][]TimeInterval `bson:"availableTimeSlots" json:"availableTimeSlots"`
	ExcludedDates []string                  `bson:"unavailableDates" json:"unavailableDates"`
}

// HasWorkingDay reports whether day is in the working-day set.
func (t WeeklyTemplate) HasWorkingDay(day string) bool {
	for _, d := range t.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// HasExcludedDate reports whether date is in the exclusion set.
func (t WeeklyTemplate) HasExcludedDate(date string) bool {
	for _, d := range t.ExcludedDates {
		if d == date {
			return true
		}
	}
	return false
}

// AvailabilityPatch carries a partial availability update; only non-nil
// fields replace the corresponding template fields (merge semantics).
type AvailabilityPatch struct {
	WorkingDays   []string                  `json:"availableDays"`
	SlotsByDay    map[string][]TimeInterval `json:"availableTimeSlots"`
	ExcludedDates []string                  `json:"unavailableDates"`
}
