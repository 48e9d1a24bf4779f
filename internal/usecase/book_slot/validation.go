package book_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// normalizeRequest обрезает пробелы в текстовых полях
func normalizeRequest(req *Request) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
}

// validateRequest проверяет наличие полей и принадлежность времени каталогу
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name", ErrValidationMissing)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email", ErrValidationMissing)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrValidationMissing)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time", ErrValidationMissing)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}

	if !domain.IsCatalogSlot(req.Time) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.Time)
	}

	return nil
}

// validateDate проверяет, что дата не раньше сегодняшнего дня в локации бронирования
func validateDate(date types.Date, now time.Time, loc *time.Location) error {
	today := types.NewDate(now.In(loc))
	if date.Before(today) {
		return fmt.Errorf("%w: %s is before %s", ErrDateInPast, date, today)
	}
	return nil
}
