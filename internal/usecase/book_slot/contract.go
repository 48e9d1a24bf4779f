package book_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListBookedTimes(ctx context.Context, date types.Date) ([]types.TimeString, error)
	Insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// Notifier уведомляет оператора о новой записи.
// Вызов не блокирует и не возвращает ошибку: отправка best-effort.
type Notifier interface {
	Notify(appt *domain.Appointment)
}

// MetricsRecorder счётчик результатов бронирования
type MetricsRecorder interface {
	IncBooking(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
