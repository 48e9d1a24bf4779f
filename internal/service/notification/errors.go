package notification

import "errors"

var (
	// ErrPoolSubmit возвращается, когда задачу не удалось поставить в пул (пул переполнен или закрыт)
	ErrPoolSubmit = errors.New("notification: failed to submit task")

	// ErrRender возвращается при ошибке сборки письма
	ErrRender = errors.New("notification: failed to render message")

	// ErrSend возвращается, когда транспорт не отправил письмо
	ErrSend = errors.New("notification: failed to send message")
)
