package book_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_slot"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookSlotRequest HTTP request model (JSON или поля формы с теми же именами)
type BookSlotRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"` // "2025-03-10" или ISO-8601 момент
	Time  string `json:"time"` // "10:00"
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

// AppointmentResponse подтверждённая запись
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустые дата и время остаются нулевыми, их отсутствие проверяет use case.
func (r *BookSlotRequest) ToUseCaseRequest(loc *time.Location) (*bookSlot.Request, error) {
	date, err := handlers.ParseDate(r.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bookSlot.ErrInvalidDate, err)
	}

	var slot types.TimeString
	if strings.TrimSpace(r.Time) != "" {
		slot, err = types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", bookSlot.ErrInvalidTimeSlot, err)
		}
	}

	return &bookSlot.Request{
		Name:  r.Name,
		Email: r.Email,
		Date:  date,
		Time:  slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Date:      resp.Date.String(),
		Time:      resp.Time.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
