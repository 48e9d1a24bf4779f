package book_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

// UseCase use case записи на свободный слот (проверка конфликта + сохранение)
type UseCase struct {
	repo         AppointmentRepository
	notifier     Notifier
	metrics      MetricsRecorder
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location - локация, в которой определяется "сегодня" для проверки прошедших дат.
func NewUseCase(
	repo AppointmentRepository,
	notifier Notifier,
	metricsRecorder MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	if metricsRecorder == nil {
		metricsRecorder = noopMetrics{}
	}
	return &UseCase{
		repo:         repo,
		notifier:     notifier,
		metrics:      metricsRecorder,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case записи.
//
// Порядок:
//  1. валидация полей и слота;
//  2. чтение занятых слотов на дату (ошибка чтения = пустой список);
//  3. если слот занят - ErrConflict без вставки;
//  4. вставка; нарушение уникального индекса (параллельная запись) тоже ErrConflict;
//  5. уведомление оператора в фоне, его ошибки не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("BookSlot: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		uc.metrics.IncBooking(metrics.BookingInvalid)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.location); err != nil {
		uc.logger.Warn("BookSlot: date validation failed: %v", err)
		uc.metrics.IncBooking(metrics.BookingInvalid)
		return nil, err
	}

	// 2. Получаем занятые слоты на дату.
	// Ошибку чтения не пробрасываем: конфликт всё равно поймает уникальный индекс при вставке.
	bookedTimes, err := uc.repo.ListBookedTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("BookSlot: failed to list booked times for date=%s, continuing with empty list: %v", req.Date, err)
		bookedTimes = nil
	}

	// 3. Проверяем конфликт
	for _, booked := range bookedTimes {
		if booked == req.Time {
			uc.logger.Warn("BookSlot: slot date=%s, time=%s already booked", req.Date, req.Time)
			uc.metrics.IncBooking(metrics.BookingConflict)
			return nil, ErrConflict
		}
	}

	// 4. Сохраняем запись
	created, err := uc.repo.Insert(ctx, &domain.Appointment{
		Name:  req.Name,
		Email: req.Email,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("BookSlot: slot date=%s, time=%s taken by a concurrent booking", req.Date, req.Time)
			uc.metrics.IncBooking(metrics.BookingConflict)
			return nil, ErrConflict
		}
		uc.logger.Error("BookSlot: failed to insert appointment date=%s, time=%s: %v", req.Date, req.Time, err)
		uc.metrics.IncBooking(metrics.BookingFailed)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	uc.logger.Info("BookSlot: successfully created appointment id=%d", created.ID)
	uc.metrics.IncBooking(metrics.BookingConfirmed)

	// 5. Уведомляем оператора (не блокирует)
	uc.notifier.Notify(created)

	return &Response{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		Date:      created.Date,
		Time:      created.Time,
		CreatedAt: created.CreatedAt,
	}, nil
}

type noopMetrics struct{}

func (noopMetrics) IncBooking(string) {}
