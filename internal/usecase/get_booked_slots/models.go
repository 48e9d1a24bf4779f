package get_booked_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса занятых слотов
type Request struct {
	Date types.Date
}

// Response занятые слоты на дату
type Response struct {
	Date   types.Date
	Booked []types.TimeString        // Занятое время, по возрастанию
	Index  domain.BookedSlotIndex    // {"YYYY-MM-DD": ["09:00", ...]}
	Slots  []domain.SlotAvailability // Весь каталог с флагом booked
}
