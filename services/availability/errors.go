package availability

import "errors"

// Validation errors surfaced by template operations. Handlers translate these
// into 400 responses; none of them leaves partial state behind.
var (
	ErrInvalidFormat   = errors.New("time must be in HH:MM 24-hour format")
	ErrInvalidDuration = errors.New("time slot must be exactly 30 minutes")
	ErrInvalidSlot     = errors.New("invalid time slot")
	ErrInvalidDay      = errors.New("day must be one of mon, tue, wed, thu, fri, sat, sun")
	ErrDuplicateSlot   = errors.New("time slot already exists for this day")
	ErrSlotNotFound    = errors.New("time slot not found for this day")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
)
