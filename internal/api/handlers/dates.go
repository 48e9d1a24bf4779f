package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ErrInvalidDate возвращается ParseDate для нераспознанной даты
var ErrInvalidDate = errors.New("invalid date")

// ParseDate разбирает дату из формы или query.
// Принимает YYYY-MM-DD и любые форматы, которые понимает dateparse (в т.ч. ISO-8601 с зоной);
// момент времени переводится в loc, берётся календарная дата.
// Пустая строка даёт нулевую дату без ошибки.
func ParseDate(s string, loc *time.Location) (types.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return types.Date{}, nil
	}

	if d, err := types.ParseDate(s); err == nil {
		return d, nil
	}

	if loc == nil {
		loc = time.UTC
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return types.NewDate(t.In(loc)), nil
}
