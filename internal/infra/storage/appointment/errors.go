package appointment

import "errors"

var (
	// ErrSlotTaken возвращается, когда уникальный индекс (date, time) отклонил вставку
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrMigrate возвращается при ошибке создания схемы
	ErrMigrate = errors.New("appointment.repository: failed to apply schema")
)
