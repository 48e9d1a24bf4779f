package notification

import (
	"context"
	"html/template"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentLister источник записей для календаря
type AppointmentLister interface {
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
	ListFrom(ctx context.Context, from types.Date) ([]*domain.Appointment, error)
}

// CalendarRenderer строит календарь записей
type CalendarRenderer interface {
	RenderHTML(appointments []*domain.Appointment) (template.HTML, error)
	RenderText(appointments []*domain.Appointment) string
}

// Sender транспорт писем (smtp, resend, log)
type Sender interface {
	Send(ctx context.Context, msg *mailer.Message) error
}

// MetricsRecorder счётчик результатов уведомлений
type MetricsRecorder interface {
	IncNotification(result string)
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
