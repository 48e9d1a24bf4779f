// Package api собирает HTTP роутер сервиса
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

// Handler HTTP обработчик эндпоинта
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// HealthHandler пробы liveness/readiness
type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

// RouterConfig зависимости роутера
type RouterConfig struct {
	BookSlot       Handler
	GetBookedSlots Handler
	Health         HealthHandler

	Metrics      *metrics.Metrics // nil - метрики выключены
	MetricsPath  string
	MetricsHTTP  http.Handler // по умолчанию promhttp.Handler()
	RateLimiter  *middleware.RateLimiter
	MaxBodyBytes int64
	Logger       middleware.Logger
}

// NewRouter регистрирует маршруты:
//
//	POST /api/v1/book   - запись на слот (rate limit)
//	GET  /api/v1/slots  - занятые слоты на дату
//	GET  /healthz, /readyz
//	GET  {MetricsPath}  - Prometheus
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))

		metricsHandler := cfg.MetricsHTTP
		if metricsHandler == nil {
			metricsHandler = promhttp.Handler()
		}
		r.Handle(cfg.MetricsPath, metricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/healthz", cfg.Health.Healthz).Methods(http.MethodGet)
	r.HandleFunc("/readyz", cfg.Health.Readyz).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	var book http.Handler = http.HandlerFunc(cfg.BookSlot.Handle)
	book = middleware.MaxBody(cfg.MaxBodyBytes)(book)
	if cfg.RateLimiter != nil {
		book = cfg.RateLimiter.Middleware(book)
	}
	api.Handle("/book", book).Methods(http.MethodPost)

	api.HandleFunc("/slots", cfg.GetBookedSlots.Handle).Methods(http.MethodGet)

	return r
}
