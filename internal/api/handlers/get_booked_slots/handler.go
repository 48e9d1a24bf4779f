package get_booked_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getBookedSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_booked_slots"
)

const (
	msgMissingDate = "Date is required"
	msgInvalidDate = "Invalid date, expected YYYY-MM-DD"
)

// Handler HTTP обработчик запроса занятых слотов на дату
type Handler struct {
	useCase  GetBookedSlotsUseCase
	location *time.Location
	logger   Logger
}

// NewHandler location используется для перевода ISO-моментов в календарную дату
func NewHandler(useCase GetBookedSlotsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD или ISO-8601)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDate(r.URL.Query().Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookedSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getBookedSlots.ErrValidationMissing):
			h.logger.Warn("GET /slots - Missing date")
			handlers.RespondBadRequest(w, msgMissingDate)
		default:
			h.logger.Error("GET /slots - Failed to get booked slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
