package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

func testMessage() *Message {
	return &Message{
		From:    "Appointment Booking <booking@example.com>",
		To:      []string{"ops@example.com"},
		Subject: "New Appointment Booking",
		HTML:    "<h1>New Appointment Booking</h1>",
		Text:    "New Appointment Booking",
	}
}

func TestResendSend(t *testing.T) {
	var got resendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer server.Close()

	client := NewResendClient(server.URL+"/", "re_test", time.Second, logger.NewNop())

	require.NoError(t, client.Send(context.Background(), testMessage()))
	assert.Equal(t, []string{"ops@example.com"}, got.To)
	assert.Equal(t, "New Appointment Booking", got.Subject)
	assert.Equal(t, "<h1>New Appointment Booking</h1>", got.HTML)
}

func TestResendSendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer server.Close()

	err := NewResendClient(server.URL, "re_test", time.Second, logger.NewNop()).Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Contains(t, err.Error(), "Invalid from field")
}

func TestResendSendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewResendClient(server.URL, "re_test", time.Second, logger.NewNop()).Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestResendSendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	err := NewResendClient(url, "re_test", time.Second, logger.NewNop()).Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestResendSendInvalidMessage(t *testing.T) {
	client := NewResendClient("", "re_test", time.Second, logger.NewNop())
	assert.Equal(t, DefaultResendBaseURL, client.baseURL)

	err := client.Send(context.Background(), &Message{From: "a@example.com"})
	assert.ErrorIs(t, err, ErrInvalidMessage)
}
