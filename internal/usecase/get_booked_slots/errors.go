package get_booked_slots

import "errors"

var (
	// ErrValidationMissing возвращается, когда дата не указана
	ErrValidationMissing = errors.New("get_booked_slots: date is required")
)
