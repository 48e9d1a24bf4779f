package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSMTPSend(t *testing.T) {
	d := &fakeDialer{}
	sender := &SMTPSender{dialer: d, log: logger.NewNop()}

	require.NoError(t, sender.Send(context.Background(), testMessage()))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"ops@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New Appointment Booking"}, m.GetHeader("Subject"))
}

func TestSMTPSendFailure(t *testing.T) {
	sender := &SMTPSender{dialer: &fakeDialer{err: errors.New("535 authentication failed")}, log: logger.NewNop()}

	err := sender.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestSMTPSendCancelled(t *testing.T) {
	d := &fakeDialer{}
	sender := &SMTPSender{dialer: d, log: logger.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sender.Send(ctx, testMessage()), ErrSendFailed)
	assert.Empty(t, d.sent)
}

func TestLogSender(t *testing.T) {
	sender := NewLogSender(logger.NewNop())

	assert.NoError(t, sender.Send(context.Background(), testMessage()))
	assert.ErrorIs(t, sender.Send(context.Background(), &Message{}), ErrInvalidMessage)
}
