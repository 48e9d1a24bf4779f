package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Appointment represents a confirmed appointment.
// Appointments are created once and never updated or deleted.
type Appointment struct {
	ID    int64
	Name  string
	Email string
	Date  types.Date
	Time  types.TimeString

	CreatedAt time.Time
}

// Slot returns the (date, time) pair occupied by the appointment
func (a *Appointment) Slot() Slot {
	return Slot{Date: a.Date, Time: a.Time}
}

// BookedSlotIndex maps a date key (YYYY-MM-DD) to the times already booked on that date
type BookedSlotIndex map[string][]string
