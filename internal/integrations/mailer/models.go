package mailer

import "fmt"

// Message письмо с HTML и текстовой версией
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Validate проверяет обязательные поля письма
func (m *Message) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidMessage)
	}
	if m.From == "" {
		return fmt.Errorf("%w: from is empty", ErrInvalidMessage)
	}
	if len(m.To) == 0 {
		return fmt.Errorf("%w: no recipients", ErrInvalidMessage)
	}
	return nil
}

// resendEmailRequest тело запроса POST /emails
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// resendEmailResponse ответ Resend на успешную отправку
type resendEmailResponse struct {
	ID string `json:"id"`
}

// resendErrorResponse модель ошибки от Resend
type resendErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}
