package appointment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestInsert(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (name,email,date,time) VALUES ($1,$2,$3,$4) RETURNING id, created_at")).
		WithArgs("Ana", "ana@x.com", "2025-03-10", "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	input := &domain.Appointment{
		Name:  "Ana",
		Email: "ana@x.com",
		Date:  types.MustDate("2025-03-10"),
		Time:  "10:00",
	}
	appt, err := repo.Insert(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), appt.ID)
	assert.Equal(t, createdAt, appt.CreatedAt)
	assert.Equal(t, "Ana", appt.Name)

	// входная запись не меняется
	assert.NotSame(t, input, appt)
	assert.Zero(t, input.ID)
	assert.True(t, input.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertUniqueViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Insert(context.Background(), &domain.Appointment{
		Name: "Ben", Email: "ben@x.com", Date: types.MustDate("2025-03-10"), Time: "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NotErrorIs(t, err, ErrExecQuery)
}

func TestInsertStoreFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO appointments").WillReturnError(errors.New("connection refused"))

	_, err := repo.Insert(context.Background(), &domain.Appointment{
		Name: "Ben", Email: "ben@x.com", Date: types.MustDate("2025-03-10"), Time: "10:00",
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSlotTaken)
}

func TestListAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(appointmentColumns).
		AddRow(int64(2), "Ana", "ana@x.com", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC), created).
		AddRow(int64(1), "Ben", "ben@x.com", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), []byte("10:00:00"), created).
		AddRow(int64(3), "Cy", "cy@x.com", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), []byte("09:00:00"), created)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, date, time, created_at FROM appointments ORDER BY date ASC, time ASC, id ASC")).
		WillReturnRows(rows)

	appointments, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, appointments, 3)

	assert.Equal(t, types.TimeString("09:00"), appointments[0].Time)
	assert.Equal(t, types.TimeString("10:00"), appointments[1].Time)
	assert.Equal(t, types.MustDate("2025-03-11"), appointments[2].Date)

	for i := 1; i < len(appointments); i++ {
		prev, cur := appointments[i-1], appointments[i]
		ordered := prev.Date.Before(cur.Date) || (prev.Date == cur.Date && !cur.Time.IsBefore(prev.Time))
		assert.True(t, ordered, "appointments must be ordered by (date, time)")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFrom(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE date >= $1 ORDER BY date ASC, time ASC, id ASC")).
		WithArgs("2025-03-10").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	appointments, err := repo.ListFrom(context.Background(), types.MustDate("2025-03-10"))
	require.NoError(t, err)
	assert.Empty(t, appointments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookedTimes(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT time FROM appointments WHERE date = $1 ORDER BY time ASC")).
		WithArgs("2025-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"time"}).AddRow([]byte("09:00:00")).AddRow([]byte("10:00:00")))

	times, err := repo.ListBookedTimes(context.Background(), types.MustDate("2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, times)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookedTimesEmptyDate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT time FROM appointments").
		WillReturnRows(sqlmock.NewRows([]string{"time"}))

	times, err := repo.ListBookedTimes(context.Background(), types.MustDate("2025-03-12"))
	require.NoError(t, err)
	assert.NotNil(t, times)
	assert.Empty(t, times)
}

func TestListBookedTimesStoreFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT time FROM appointments").WillReturnError(errors.New("connection refused"))

	_, err := repo.ListBookedTimes(context.Background(), types.MustDate("2025-03-12"))
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS appointments").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE UNIQUE INDEX IF NOT EXISTS appointments_date_time_key ON appointments (date, time)")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	assert.ErrorIs(t, repo.EnsureSchema(context.Background()), ErrMigrate)
}
