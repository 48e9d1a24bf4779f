package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// Check именованная проверка для /readyz
type Check struct {
	Name   string
	Pinger Pinger
}

// StatusResponse тело ответа проб
type StatusResponse struct {
	Status   string            `json:"status"`
	Failures map[string]string `json:"failures,omitempty"`
}

// Handler обработчик liveness/readiness проб
type Handler struct {
	checks []Check
	logger Logger
}

// NewHandler checks проверяются по очереди в /readyz
func NewHandler(logger Logger, checks ...Check) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Healthz GET /healthz - процесс жив
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz GET /readyz - все зависимости доступны
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	failures := make(map[string]string)

	for _, check := range h.checks {
		if check.Pinger == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		err := check.Pinger.Ping(ctx)
		cancel()
		if err != nil {
			h.logger.Warn("GET /readyz - %s unavailable: %v", check.Name, err)
			failures[check.Name] = err.Error()
		}
	}

	if len(failures) > 0 {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "unavailable", Failures: failures})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
