package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Slot is a (date, time-of-day) pair drawn from the daily SlotCatalog
type Slot struct {
	Date types.Date
	Time types.TimeString
}

// String returns "YYYY-MM-DD HH:MM"
func (s Slot) String() string {
	return s.Date.String() + " " + s.Time.String()
}

// SlotCatalog is the fixed list of bookable times for any date
var SlotCatalog = []types.TimeString{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
}

// IsCatalogSlot returns true if t is one of the SlotCatalog values
func IsCatalogSlot(t types.TimeString) bool {
	for _, slot := range SlotCatalog {
		if slot == t {
			return true
		}
	}
	return false
}

// SlotAvailability is a catalog time with its booked flag for a given date
type SlotAvailability struct {
	Time   types.TimeString
	Booked bool
}

// CatalogAvailability marks every catalog time as booked or free
func CatalogAvailability(booked []types.TimeString) []SlotAvailability {
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	result := make([]SlotAvailability, len(SlotCatalog))
	for i, t := range SlotCatalog {
		_, isBooked := taken[t]
		result[i] = SlotAvailability{Time: t, Booked: isBooked}
	}
	return result
}
