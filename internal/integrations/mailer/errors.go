package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("mailer: invalid response")

	// ErrSendFailed возвращается, когда провайдер не принял письмо
	ErrSendFailed = errors.New("mailer: send failed")

	// ErrInvalidMessage возвращается, если у письма нет отправителя или получателя
	ErrInvalidMessage = errors.New("mailer: invalid message")
)
