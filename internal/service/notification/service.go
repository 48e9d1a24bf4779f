// Package notification sends the operator an email about every confirmed booking.
// Delivery runs on a bounded goroutine pool and never affects the booking result.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	defaultWorkers     = 4
	defaultSendTimeout = 15 * time.Second
	defaultSubject     = "New Appointment Booking"
)

// Config настройки уведомлений
type Config struct {
	OperatorEmail string
	From          string
	Subject       string
	UpcomingOnly  bool // в календарь попадают только записи с сегодняшнего дня
	Workers       int
	SendTimeout   time.Duration
	Location      *time.Location // локация для определения "сегодня"
}

// Service асинхронный уведомитель оператора
type Service struct {
	cfg          Config
	pool         *ants.Pool
	lister       AppointmentLister
	renderer     CalendarRenderer
	sender       Sender
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис уведомлений и пул воркеров
func NewService(
	cfg Config,
	lister AppointmentLister,
	renderer CalendarRenderer,
	sender Sender,
	metricsRecorder MetricsRecorder,
	logger Logger,
) (*Service, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	if cfg.Subject == "" {
		cfg.Subject = defaultSubject
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if metricsRecorder == nil {
		metricsRecorder = noopMetrics{}
	}

	pool, err := ants.NewPool(cfg.Workers,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p interface{}) {
			logger.Error("Notification: panic in worker: %v", p)
			metricsRecorder.IncNotification(metrics.NotificationFailed)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create notification pool: %w", err)
	}

	return &Service{
		cfg:          cfg,
		pool:         pool,
		lister:       lister,
		renderer:     renderer,
		sender:       sender,
		metrics:      metricsRecorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}, nil
}

// Notify ставит отправку письма в пул и сразу возвращается.
// Если пул занят или закрыт, уведомление теряется (логируется и учитывается в метриках).
func (s *Service) Notify(appt *domain.Appointment) {
	if appt == nil {
		return
	}
	booked := *appt

	err := s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SendTimeout)
		defer cancel()

		if err := s.Send(ctx, &booked); err != nil {
			s.logger.Error("Notification: appointment id=%d date=%s time=%s: %v", booked.ID, booked.Date, booked.Time, err)
			s.metrics.IncNotification(metrics.NotificationFailed)
			return
		}
		s.metrics.IncNotification(metrics.NotificationSent)
	})
	if err != nil {
		s.logger.Error("Notification: %v: appointment id=%d: %v", ErrPoolSubmit, appt.ID, err)
		s.metrics.IncNotification(metrics.NotificationDropped)
	}
}

// Send синхронно собирает и отправляет письмо о записи appt
func (s *Service) Send(ctx context.Context, appt *domain.Appointment) error {
	appointments := s.listAppointments(ctx)

	cal, err := s.renderer.RenderHTML(appointments)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	html, err := renderHTML(appt, cal)
	if err != nil {
		return err
	}

	msg := &mailer.Message{
		From:    s.cfg.From,
		To:      []string{s.cfg.OperatorEmail},
		Subject: s.cfg.Subject,
		HTML:    html,
		Text:    renderText(appt, s.renderer.RenderText(appointments)),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	s.logger.Info("Notification: operator notified about appointment id=%d, calendar size=%d", appt.ID, len(appointments))
	return nil
}

// Close ждёт завершения запущенных отправок не дольше timeout
func (s *Service) Close(timeout time.Duration) error {
	return s.pool.ReleaseTimeout(timeout)
}

// listAppointments возвращает записи для календаря. Ошибка чтения = пустой календарь.
func (s *Service) listAppointments(ctx context.Context) []*domain.Appointment {
	var (
		appointments []*domain.Appointment
		err          error
	)

	if s.cfg.UpcomingOnly {
		today := types.NewDate(s.timeProvider.Now().In(s.cfg.Location))
		appointments, err = s.lister.ListFrom(ctx, today)
	} else {
		appointments, err = s.lister.ListAll(ctx)
	}

	if err != nil {
		s.logger.Error("Notification: failed to list appointments, rendering empty calendar: %v", err)
		return nil
	}
	return appointments
}

type noopMetrics struct{}

func (noopMetrics) IncNotification(string) {}
