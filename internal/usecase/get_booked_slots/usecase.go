package get_booked_slots

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case получения занятых слотов на дату
type UseCase struct {
	repo   AppointmentRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute возвращает занятые слоты на дату.
// Ошибка чтения из хранилища не пробрасывается: клиент получает пустой набор.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetBookedSlots: date is missing")
		return nil, ErrValidationMissing
	}

	booked, err := uc.repo.ListBookedTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetBookedSlots: failed to list booked times for date=%s, returning empty set: %v", req.Date, err)
		booked = nil
	}

	key := req.Date.String()
	times := make([]string, 0, len(booked))
	for _, t := range booked {
		times = append(times, t.String())
	}

	uc.logger.Info("GetBookedSlots: date=%s, booked=%d", key, len(times))

	return &Response{
		Date:   req.Date,
		Booked: booked,
		Index:  domain.BookedSlotIndex{key: times},
		Slots:  domain.CatalogAvailability(booked),
	}, nil
}
