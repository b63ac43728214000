package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"movie-booking-service/internal/module/show/repositories"
	"movie-booking-service/internal/pkg/log"
	log_internal "movie-booking-service/internal/pkg/log"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
}

func TestHoldSeat(t *testing.T) {
	staleBefore := time.Now().UTC().Add(-5 * time.Minute)

	t.Run("available seat is taken", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil)

		mock.ExpectExec("UPDATE show_seats").
			WithArgs("pending", int64(7), int64(1), "A1", "available", staleBefore).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		held, err := repo.HoldSeat(context.Background(), 1, "A1", 7, staleBefore)

		assert.NoError(t, err)
		assert.True(t, held)
	})

	t.Run("seat held by someone else is not taken", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil)

		mock.ExpectExec("UPDATE show_seats").
			WithArgs("pending", int64(7), int64(1), "A1", "available", staleBefore).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		held, err := repo.HoldSeat(context.Background(), 1, "A1", 7, staleBefore)

		assert.NoError(t, err)
		assert.False(t, held)
	})
}

func TestUpdateShowStatus(t *testing.T) {
	t.Run("transition from the expected state", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil)

		mock.ExpectExec("UPDATE shows").
			WithArgs("running", int64(1), "scheduled").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		updated, err := repo.UpdateShowStatus(context.Background(), 1, "scheduled", "running")

		assert.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("wrong current state is a no-op", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil)

		mock.ExpectExec("UPDATE shows").
			WithArgs("running", int64(1), "scheduled").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		updated, err := repo.UpdateShowStatus(context.Background(), 1, "scheduled", "running")

		assert.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestConfirmBookedSeats(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	mock.ExpectExec("UPDATE show_seats").
		WithArgs("booked", int64(1), pq.Array([]string{"A1", "A2"})).
		WillReturnResult(sqlxmock.NewResult(0, 2))

	err := repo.ConfirmBookedSeats(context.Background(), 1, []string{"A1", "A2"})

	assert.NoError(t, err)
}

func TestReleaseExpiredSeats(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	staleBefore := time.Now().UTC().Add(-5 * time.Minute)
	rows := sqlxmock.NewRows([]string{"seat_number"}).AddRow("A1").AddRow("A2")
	mock.ExpectQuery("UPDATE show_seats").
		WithArgs("available", int64(1), "pending", staleBefore).
		WillReturnRows(rows)

	released, err := repo.ReleaseExpiredSeats(context.Background(), 1, staleBefore)

	assert.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, released)
}

func TestReleaseSeatsByUser(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	mock.ExpectExec("UPDATE show_seats").
		WithArgs("available", int64(1), int64(7), pq.Array([]string{"A1"})).
		WillReturnResult(sqlxmock.NewResult(0, 1))

	err := repo.ReleaseSeatsByUser(context.Background(), 1, 7, []string{"A1"})

	assert.NoError(t, err)
}
