package book_slot

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на запись
type Request struct {
	Name  string           // Имя посетителя
	Email string           // Email посетителя (формат не проверяется)
	Date  types.Date       // Дата записи
	Time  types.TimeString // Время из каталога слотов, например "10:00"
}

// Response модель подтверждённой записи
type Response struct {
	ID        int64
	Name      string
	Email     string
	Date      types.Date
	Time      types.TimeString
	CreatedAt time.Time
}
