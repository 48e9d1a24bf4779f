package appointment

import (
	"context"
	"fmt"
)

// schemaStatements идемпотентная схема таблицы записей.
// Уникальный индекс (date, time) закрывает гонку check-then-insert между параллельными запросами.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		date DATE NOT NULL,
		time TIME NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS appointments_date_time_key ON appointments (date, time)`,
}

// EnsureSchema создает таблицу и уникальный индекс, если их ещё нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrMigrate, err)
		}
	}
	return nil
}
