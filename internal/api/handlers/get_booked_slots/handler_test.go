package get_booked_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getBookedSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_booked_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeRepository struct {
	times []types.TimeString
	err   error
}

func (f *fakeRepository) ListBookedTimes(_ context.Context, _ types.Date) ([]types.TimeString, error) {
	return f.times, f.err
}

func newHandler(repo *fakeRepository) *Handler {
	uc := getBookedSlots.NewUseCase(repo, logger.NewNop())
	return NewHandler(uc, time.UTC, logger.NewNop())
}

func TestHandle(t *testing.T) {
	h := newHandler(&fakeRepository{times: []types.TimeString{"09:00", "10:00"}})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2025-03-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body BookedSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, map[string][]string{"2025-03-10": {"09:00", "10:00"}}, body.BookedSlots)
	require.Len(t, body.Slots, 8)
	assert.Equal(t, SlotResponse{Time: "09:00", Booked: true}, body.Slots[0])
	assert.Equal(t, SlotResponse{Time: "16:00", Booked: false}, body.Slots[7])
}

func TestHandleStoreOutageReturnsEmptySet(t *testing.T) {
	h := newHandler(&fakeRepository{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2025-03-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"2025-03-10":[]}`, extractBookedSlots(t, rec))
}

func TestHandleBadDate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{"missing", "", msgMissingDate},
		{"invalid", "?date=2025-13-45", msgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHandler(&fakeRepository{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func extractBookedSlots(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	return string(raw["bookedSlots"])
}
