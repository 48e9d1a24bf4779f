package get_booked_slots

import (
	getBookedSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_booked_slots"
)

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	Date        string              `json:"date"`
	BookedSlots map[string][]string `json:"bookedSlots"`
	Slots       []SlotResponse      `json:"slots"`
}

// SlotResponse слот каталога с флагом занятости
type SlotResponse struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *BookedSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Time: s.Time.String(), Booked: s.Booked})
	}

	return &BookedSlotsResponse{
		Date:        resp.Date.String(),
		BookedSlots: resp.Index,
		Slots:       slots,
	}
}
