package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/api"
	bookSlotHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/book_slot"
	getBookedSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_booked_slots"
	healthHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/health"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/service/notification"
	bookSlotUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_slot"
	getBookedSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_booked_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

const migrateTimeout = 30 * time.Second

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий (с метриками или без)
	var appointmentRepository *appointmentRepo.Repository
	if cfg.Metrics.Enabled {
		appointmentRepository = appointmentRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
		log.Info("Database metrics collection started")
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
	}

	if cfg.Database.AutoMigrate {
		migrateCtx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		err := appointmentRepository.EnsureSchema(migrateCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to ensure schema: %v", err)
		}
		log.Info("Database schema is up to date")
	}

	// Транспорт писем
	sender := newSender(cfg.Notification, log)
	log.Info("Notification provider: %s, operator=%s", cfg.Notification.Provider, cfg.Notification.OperatorEmail)

	// Уведомления оператора
	notifier, err := notification.NewService(
		notification.Config{
			OperatorEmail: cfg.Notification.OperatorEmail,
			From:          cfg.Notification.From,
			Subject:       cfg.Notification.Subject,
			UpcomingOnly:  cfg.Notification.UpcomingOnly,
			Workers:       cfg.Notification.Workers,
			SendTimeout:   time.Duration(cfg.Notification.SendTimeout) * time.Second,
			Location:      location,
		},
		appointmentRepository,
		calendar.NewBuilder(),
		sender,
		metricsCollector,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize notification service: %v", err)
	}

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(
		appointmentRepository,
		notifier,
		metricsCollector,
		location,
		log,
	)
	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(appointmentRepository, log)

	// Rate limit на отправку формы
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		trustedProxies, err := cfg.RateLimit.TrustedProxyPrefixes()
		if err != nil {
			log.Fatal("Failed to parse trusted proxies: %v", err)
		}
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, trustedProxies, log)
		log.Info("Rate limit enabled: %.2f rps, burst %d, trusted proxies %d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, len(trustedProxies))
	}

	// Настраиваем роутер
	r := api.NewRouter(api.RouterConfig{
		BookSlot:       bookSlotHandler.NewHandler(bookSlotUseCase, location, log),
		GetBookedSlots: getBookedSlotsHandler.NewHandler(getBookedSlotsUseCase, location, log),
		Health: healthHandler.NewHandler(log, healthHandler.Check{
			Name:   "postgres",
			Pinger: appointmentRepository,
		}),
		Metrics:      metricsCollector,
		MetricsPath:  cfg.Metrics.Path,
		RateLimiter:  limiter,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Logger:       log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уже принятых уведомлений
	if err := notifier.Close(shutdownTimeout); err != nil {
		log.Warn("Notification pool did not drain: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}

// newSender выбирает транспорт писем по notification.provider
func newSender(cfg config.NotificationConfig, log *logger.Logger) notification.Sender {
	switch cfg.Provider {
	case config.ProviderSMTP:
		return mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, log)
	case config.ProviderResend:
		return mailer.NewResendClient(cfg.Resend.BaseURL, cfg.Resend.APIKey, time.Duration(cfg.Resend.Timeout)*time.Second, log)
	default:
		return mailer.NewLogSender(log)
	}
}
