package appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// DB исполнитель запросов с проверкой соединения.
// Поддерживает *sql.DB и *dbmetrics.DB
type DB interface {
	DBExecutor
	PingContext(ctx context.Context) error
}
