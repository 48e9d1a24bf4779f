package calendar

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// LabelLayout формат заголовка дня, например "Monday, March 10, 2025"
const LabelLayout = "Monday, January 2, 2006"

// Entry одна запись внутри дня
type Entry struct {
	Time types.TimeString
	Name string
}

// Day записи одной календарной даты
type Day struct {
	Date    types.Date
	Label   string
	Entries []Entry
}

// View записи, сгруппированные по дате
type View struct {
	Days []Day
}

// Len возвращает общее количество записей
func (v *View) Len() int {
	n := 0
	for _, day := range v.Days {
		n += len(day.Entries)
	}
	return n
}
