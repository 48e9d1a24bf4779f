package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	tableName = "appointments"

	// uniqueViolation код ошибки PostgreSQL unique_violation
	uniqueViolation = "23505"
)

var appointmentColumns = []string{
	"id",
	"name",
	"email",
	"date",
	"time",
	"created_at",
}

// Repository репозиторий записей на приём.
// Только вставка и чтение: записи никогда не изменяются и не удаляются.
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет новую запись и возвращает её копию с ID и CreatedAt, appt не изменяется.
// Если слот уже занят (нарушение уникального индекса), возвращает ErrSlotTaken.
func (r *Repository) Insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns("name", "email", "date", "time").
		Values(appt.Name, appt.Email, appt.Date, appt.Time).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	created := *appt
	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrSlotTaken, appt.Slot())
		}
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	created.CreatedAt = createdAt.Time

	return &created, nil
}

// ListAll возвращает все записи, отсортированные по дате и времени
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListAll", nil)
}

// ListFrom возвращает записи начиная с даты from (включительно), отсортированные по дате и времени
func (r *Repository) ListFrom(ctx context.Context, from types.Date) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListFrom", squirrel.GtOrEq{"date": from})
}

// ListBookedTimes возвращает занятые время на указанную дату (точное совпадение даты)
func (r *Repository) ListBookedTimes(ctx context.Context, date types.Date) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("time").
		From(tableName).
		Where(squirrel.Eq{"date": date}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ListBookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// Ping проверяет доступность БД (для /readyz)
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(tableName).
		OrderBy("date ASC", "time ASC", "id ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Name,
			&appt.Email,
			&appt.Date,
			&appt.Time,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
