package book_slot

import "errors"

var (
	// ErrValidationMissing возвращается, когда не заполнено обязательное поле
	ErrValidationMissing = errors.New("book_slot: required field is missing")

	// ErrInvalidInput возвращается при слишком длинных имени или email
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда время не входит в каталог слотов
	ErrInvalidTimeSlot = errors.New("book_slot: time is not a bookable slot")

	// ErrInvalidDate возвращается, когда дату не удалось разобрать
	ErrInvalidDate = errors.New("book_slot: invalid date")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату
	ErrDateInPast = errors.New("book_slot: date is in the past")

	// ErrConflict возвращается, когда слот (дата, время) уже занят
	ErrConflict = errors.New("book_slot: slot already booked")

	// ErrStoreUnavailable возвращается, когда запись не удалось сохранить
	ErrStoreUnavailable = errors.New("book_slot: store unavailable")
)
