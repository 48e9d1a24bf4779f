package book_slot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookSlot "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_slot"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeUseCase struct {
	got *bookSlot.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookSlot.Request) (*bookSlot.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &bookSlot.Response{
		ID:        1,
		Name:      req.Name,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

func serve(t *testing.T, uc *fakeUseCase, req *http.Request) (*httptest.ResponseRecorder, BookSlotResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	NewHandler(uc, time.UTC, logger.NewNop()).Handle(rec, req)

	var body BookSlotResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec, body
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleJSON(t *testing.T) {
	uc := &fakeUseCase{}

	rec, body := serve(t, uc, jsonRequest(`{"name":"Ana","email":"ana@x.com","date":"2025-03-10","time":"10:00"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, msgBooked, body.Message)
	require.NotNil(t, body.Appointment)
	assert.Equal(t, "2025-03-10", body.Appointment.Date)
	assert.Equal(t, "10:00", body.Appointment.Time)
	assert.Equal(t, types.MustDate("2025-03-10"), uc.got.Date)
}

func TestHandleURLEncodedForm(t *testing.T) {
	uc := &fakeUseCase{}
	form := url.Values{
		"name":  {"Ana"},
		"email": {"ana@x.com"},
		"date":  {"2025-03-10T00:00:00.000Z"},
		"time":  {"10:00:00"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, body := serve(t, uc, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, types.MustDate("2025-03-10"), uc.got.Date)
	assert.Equal(t, types.TimeString("10:00"), uc.got.Time)
}

func TestHandleMultipartForm(t *testing.T) {
	uc := &fakeUseCase{}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": "Ana", "email": "ana@x.com", "date": "2025-03-10", "time": "09:00"} {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/book", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec, _ := serve(t, uc, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Ana", uc.got.Name)
	assert.Equal(t, types.TimeString("09:00"), uc.got.Time)
}

func TestHandleUseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"conflict", bookSlot.ErrConflict, http.StatusConflict, msgConflict},
		{"missing", fmt.Errorf("%w: name", bookSlot.ErrValidationMissing), http.StatusBadRequest, msgMissingFields},
		{"invalid slot", bookSlot.ErrInvalidTimeSlot, http.StatusBadRequest, msgInvalidTimeSlot},
		{"past date", bookSlot.ErrDateInPast, http.StatusBadRequest, msgDateInPast},
		{"too long", bookSlot.ErrInvalidInput, http.StatusBadRequest, msgInvalidInput},
		{"store unavailable", fmt.Errorf("%w: connection refused", bookSlot.ErrStoreUnavailable), http.StatusInternalServerError, "Something went wrong. Please try again."},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(t, &fakeUseCase{err: tt.err},
				jsonRequest(`{"name":"Ana","email":"ana@x.com","date":"2025-03-10","time":"10:00"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Nil(t, body.Appointment)
		})
	}
}

func TestHandleParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"invalid json", `{"name":`, msgInvalidBody},
		{"invalid date", `{"name":"Ana","email":"ana@x.com","date":"2025-13-45","time":"10:00"}`, msgInvalidDate},
		{"invalid time", `{"name":"Ana","email":"ana@x.com","date":"2025-03-10","time":"ten"}`, msgInvalidTimeSlot},
		{"time with seconds", `{"name":"Ana","email":"ana@x.com","date":"2025-03-10","time":"10:00:45"}`, msgInvalidTimeSlot},
		{"time with fractional seconds", `{"name":"Ana","email":"ana@x.com","date":"2025-03-10","time":"10:00:59.9"}`, msgInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec, body := serve(t, uc, jsonRequest(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Nil(t, uc.got, "use case must not be called")
		})
	}
}

func TestHandleBlankFieldsReachUseCase(t *testing.T) {
	uc := &fakeUseCase{err: bookSlot.ErrValidationMissing}

	rec, body := serve(t, uc, jsonRequest(`{"name":"Ana","email":"","date":"","time":""}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgMissingFields, body.Message)
	require.NotNil(t, uc.got)
	assert.True(t, uc.got.Date.IsZero())
	assert.True(t, uc.got.Time.IsZero())
}
