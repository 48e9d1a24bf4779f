package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeStringLayout = "15:04"
	secondsLayout    = "15:04:05"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в каноническом формате HH:MM (без секунд и часового пояса)
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит пользовательский ввод "HH:MM" (допускается "HH:MM:00").
// Ненулевые секунды - ошибка: слот совпадает только точно.
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidTimeString
	}

	if t, err := time.Parse(timeStringLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	// time.Parse принимает дробные секунды даже без них в layout, поэтому проверяем обе части
	if t, err := time.Parse(secondsLayout, s); err == nil && t.Second() == 0 && t.Nanosecond() == 0 {
		return NewTimeString(t), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// parseStoredTime разбирает текстовое значение колонки TIME ("HH:MM:SS[.ffffff]")
func parseStoredTime(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{timeStringLayout, secondsLayout, "15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeString(t), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке.
// Используется для статических значений (каталог слотов, тесты).
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore сравнивает время лексикографически (для HH:MM это совпадает с хронологическим порядком)
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// Scan реализует sql.Scanner. lib/pq отдаёт колонку TIME как time.Time или как текст "HH:MM:SS".
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := parseStoredTime(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := parseStoredTime(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
