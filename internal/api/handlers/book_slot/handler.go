package book_slot

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_slot"
)

const (
	msgBooked          = "Booking confirmed! You will receive a confirmation email shortly."
	msgConflict        = "This time slot has already been booked. Please select another time."
	msgMissingFields   = "Please fill in all fields"
	msgInvalidBody     = "Invalid request body"
	msgInvalidDate     = "Please select a valid date"
	msgInvalidTimeSlot = "Please select one of the available time slots"
	msgDateInPast      = "Please select a date that is not in the past"
	msgInvalidInput    = "Name and email must be at most 255 characters"
)

// maxMultipartMemory лимит памяти для multipart формы (остальное в temp-файлы)
const maxMultipartMemory = 1 << 20

// Handler HTTP обработчик записи на слот
type Handler struct {
	useCase  BookSlotUseCase
	location *time.Location
	logger   Logger
}

// NewHandler location используется для перевода ISO-моментов в календарную дату
func NewHandler(useCase BookSlotUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/book
// Тело: JSON, application/x-www-form-urlencoded или multipart/form-data с полями name, email, date, time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /book - Failed to parse request: %v", err)
		h.respondUseCaseError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, err)
		return
	}

	h.logger.Info("POST /book - Appointment booked: id=%d, date=%s, time=%s", result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, &BookSlotResponse{
		Success:     true,
		Message:     msgBooked,
		Appointment: FromUseCaseResponse(result),
	})
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookSlot.ErrConflict):
		h.logger.Warn("POST /book - Slot already booked: %v", err)
		handlers.RespondError(w, http.StatusConflict, msgConflict)

	case errors.Is(err, bookSlot.ErrValidationMissing):
		h.logger.Warn("POST /book - Missing fields: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)

	case errors.Is(err, bookSlot.ErrInvalidDate):
		h.logger.Warn("POST /book - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, bookSlot.ErrInvalidTimeSlot):
		h.logger.Warn("POST /book - Invalid time slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)

	case errors.Is(err, bookSlot.ErrDateInPast):
		h.logger.Warn("POST /book - Date in the past: %v", err)
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, bookSlot.ErrInvalidInput):
		h.logger.Warn("POST /book - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("POST /book - Failed to book appointment: %v", err)
		handlers.RespondInternalError(w)
	}
}

// decodeRequest читает поля из JSON или формы в зависимости от Content-Type
func decodeRequest(r *http.Request) (*BookSlotRequest, error) {
	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("parse content type: %w", err)
		}
		mediaType = parsed
	}

	var req BookSlotRequest

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
	default:
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	req.Name = r.PostFormValue("name")
	req.Email = r.PostFormValue("email")
	req.Date = r.PostFormValue("date")
	req.Time = r.PostFormValue("time")

	return &req, nil
}
