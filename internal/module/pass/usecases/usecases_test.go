package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"movie-booking-service/internal/module/pass/mocks"
	"movie-booking-service/internal/module/pass/models/entity"
	"movie-booking-service/internal/module/pass/models/request"
	"movie-booking-service/internal/module/pass/usecases"
	"movie-booking-service/internal/pkg/log"
	log_internal "movie-booking-service/internal/pkg/log"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
)

func setup() {
	repoMock = new(mocks.Repositories)
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock)
}

func TestPurchase(t *testing.T) {
	t.Run("first purchase starts from now", func(t *testing.T) {
		setup()
		payload := &request.PurchasePass{Months: 1}

		repoMock.On("FindMoviePassByUserID", mock.Anything, int64(7)).Return(entity.MoviePass{}, nil)
		repoMock.On("SetTaskScheduler", mock.Anything, mock.Anything, "expire_movie_pass", mock.Anything).Return("task-1", nil)
		repoMock.On("UpsertMoviePass", mock.Anything, mock.MatchedBy(func(pass entity.MoviePass) bool {
			return pass.UserID == 7 &&
				pass.Status == entity.PassStatusActive &&
				pass.TaskID == "task-1" &&
				pass.ExpiresAt.After(time.Now().UTC().AddDate(0, 1, -1))
		})).Return(nil)

		resp, err := uc.Purchase(context.Background(), 7, payload)

		assert.NoError(t, err)
		assert.Equal(t, entity.PassStatusActive, resp.Status)
		repoMock.AssertNotCalled(t, "DeleteTaskScheduler", mock.Anything, mock.Anything)
	})

	t.Run("renewal extends from the current expiry", func(t *testing.T) {
		setup()
		currentExpiry := time.Now().UTC().AddDate(0, 0, 10)
		payload := &request.PurchasePass{Months: 2}

		repoMock.On("FindMoviePassByUserID", mock.Anything, int64(7)).Return(entity.MoviePass{
			UserID:    7,
			Status:    entity.PassStatusActive,
			ExpiresAt: currentExpiry,
			TaskID:    "task-old",
		}, nil)
		repoMock.On("DeleteTaskScheduler", mock.Anything, "task-old").Return(nil)
		repoMock.On("SetTaskScheduler", mock.Anything, mock.Anything, "expire_movie_pass", mock.Anything).Return("task-new", nil)
		repoMock.On("UpsertMoviePass", mock.Anything, mock.MatchedBy(func(pass entity.MoviePass) bool {
			return pass.ExpiresAt.Equal(currentExpiry.AddDate(0, 2, 0)) && pass.TaskID == "task-new"
		})).Return(nil)

		resp, err := uc.Purchase(context.Background(), 7, payload)

		assert.NoError(t, err)
		assert.Equal(t, currentExpiry.AddDate(0, 2, 0).Format(time.RFC3339), resp.ExpiresAt)
		repoMock.AssertCalled(t, "DeleteTaskScheduler", mock.Anything, "task-old")
	})

	t.Run("expired pass renews from now, not from the old expiry", func(t *testing.T) {
		setup()
		oldExpiry := time.Now().UTC().AddDate(0, -1, 0)
		payload := &request.PurchasePass{Months: 1}

		repoMock.On("FindMoviePassByUserID", mock.Anything, int64(7)).Return(entity.MoviePass{
			UserID:    7,
			Status:    entity.PassStatusActive,
			ExpiresAt: oldExpiry,
			TaskID:    "task-old",
		}, nil)
		repoMock.On("DeleteTaskScheduler", mock.Anything, "task-old").Return(nil)
		repoMock.On("SetTaskScheduler", mock.Anything, mock.Anything, "expire_movie_pass", mock.Anything).Return("task-new", nil)
		repoMock.On("UpsertMoviePass", mock.Anything, mock.MatchedBy(func(pass entity.MoviePass) bool {
			return pass.ExpiresAt.After(time.Now().UTC())
		})).Return(nil)

		_, err := uc.Purchase(context.Background(), 7, payload)

		assert.NoError(t, err)
	})
}

func TestStatus(t *testing.T) {
	t.Run("user without a pass reads as inactive", func(t *testing.T) {
		setup()
		repoMock.On("FindMoviePassByUserID", mock.Anything, int64(7)).Return(entity.MoviePass{}, nil)

		resp, err := uc.Status(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, entity.PassStatusInactive, resp.Status)
	})

	t.Run("active pass reports its expiry", func(t *testing.T) {
		setup()
		expiresAt := time.Now().UTC().AddDate(0, 1, 0)
		repoMock.On("FindMoviePassByUserID", mock.Anything, int64(7)).Return(entity.MoviePass{
			UserID:    7,
			Status:    entity.PassStatusActive,
			ExpiresAt: expiresAt,
		}, nil)

		resp, err := uc.Status(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, entity.PassStatusActive, resp.Status)
		assert.Equal(t, expiresAt.Format(time.RFC3339), resp.ExpiresAt)
	})
}

func TestIsActive(t *testing.T) {
	t.Run("active unexpired pass", func(t *testing.T) {
		setup()
		repoMock.On("FindMoviePassByUserID", mock.Anything, int64(7)).Return(entity.MoviePass{
			UserID:    7,
			Status:    entity.PassStatusActive,
			ExpiresAt: time.Now().UTC().AddDate(0, 1, 0),
		}, nil)

		active, err := uc.IsActive(context.Background(), 7)

		assert.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("active but expired pass is not eligible", func(t *testing.T) {
		setup()
		repoMock.On("FindMoviePassByUserID", mock.Anything, int64(7)).Return(entity.MoviePass{
			UserID:    7,
			Status:    entity.PassStatusActive,
			ExpiresAt: time.Now().UTC().Add(-time.Hour),
		}, nil)

		active, err := uc.IsActive(context.Background(), 7)

		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("no pass", func(t *testing.T) {
		setup()
		repoMock.On("FindMoviePassByUserID", mock.Anything, int64(7)).Return(entity.MoviePass{}, nil)

		active, err := uc.IsActive(context.Background(), 7)

		assert.NoError(t, err)
		assert.False(t, active)
	})
}

func TestExpireMoviePass(t *testing.T) {
	t.Run("deactivates the pass", func(t *testing.T) {
		setup()
		repoMock.On("DeactivateMoviePass", mock.Anything, int64(7)).Return(true, nil)

		err := uc.ExpireMoviePass(context.Background(), &request.PassTask{UserID: 7})

		assert.NoError(t, err)
	})

	t.Run("redelivered task is a no-op", func(t *testing.T) {
		setup()
		repoMock.On("DeactivateMoviePass", mock.Anything, int64(7)).Return(false, nil)

		err := uc.ExpireMoviePass(context.Background(), &request.PassTask{UserID: 7})

		assert.NoError(t, err)
	})
}
