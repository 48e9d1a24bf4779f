package mailer

import "context"

// LogSender пишет письмо в лог вместо отправки (для разработки)
type LogSender struct {
	log Logger
}

// NewLogSender создает отправитель, который только логирует письма
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send логирует письмо
func (s *LogSender) Send(_ context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	s.log.Info("Mailer: from=%s to=%v subject=%q\n%s", msg.From, msg.To, msg.Subject, msg.Text)
	return nil
}
