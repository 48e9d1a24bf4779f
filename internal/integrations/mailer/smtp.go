package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// dialer отправляет готовое письмо (gomail.Dialer)
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender отправляет письма через SMTP сервер
type SMTPSender struct {
	dialer dialer
	log    Logger
}

// NewSMTPSender создает новый SMTP отправитель
func NewSMTPSender(host string, port int, username, password string, log Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		log:    log,
	}
}

// Send отправляет письмо. gomail не поддерживает контекст, поэтому проверяется только отмена до отправки.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if err := s.dialer.DialAndSend(buildSMTPMessage(msg)); err != nil {
		return fmt.Errorf("%w: smtp: %v", ErrSendFailed, err)
	}

	s.log.Info("Mailer: smtp message %q sent to %v", msg.Subject, msg.To)
	return nil
}

func buildSMTPMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	return m
}
