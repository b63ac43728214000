package usecases

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"movie-booking-service/internal/module/pass/models/entity"
	"movie-booking-service/internal/module/pass/models/request"
	"movie-booking-service/internal/module/pass/models/response"
	"movie-booking-service/internal/module/pass/repositories"
	"movie-booking-service/internal/pkg/helpers"
	"movie-booking-service/internal/pkg/log"
	"movie-booking-service/internal/pkg/scheduler"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	// http
	Purchase(ctx context.Context, userID int64, payload *request.PurchasePass) (response.MoviePass, error)
	Status(ctx context.Context, userID int64) (response.MoviePass, error)
	// cross-module
	IsActive(ctx context.Context, userID int64) (bool, error)
	// scheduler
	ExpireMoviePass(ctx context.Context, payload *request.PassTask) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// Purchase buys or renews a movie pass. Renewal extends from the current
// expiry when the pass is still active; the previously scheduled expiry
// task is dropped before the new one is registered so only one expiry task
// exists per user.
func (u *usecase) Purchase(ctx context.Context, userID int64, payload *request.PurchasePass) (response.MoviePass, error) {
	existing, err := u.repo.FindMoviePassByUserID(ctx, userID)
	if err != nil {
		return response.MoviePass{}, err
	}

	if existing.TaskID != "" {
		if err := u.repo.DeleteTaskScheduler(ctx, existing.TaskID); err != nil {
			u.log.Error(ctx, "error delete previous expiry task", userID, err)
		}
	}

	now := time.Now().UTC()
	base := now
	if existing.Status == entity.PassStatusActive && existing.ExpiresAt.After(now) {
		base = existing.ExpiresAt
	}
	expiresAt := base.AddDate(0, payload.Months, 0)

	taskPayload, _ := json.Marshal(request.PassTask{UserID: userID})
	taskID, err := u.repo.SetTaskScheduler(ctx, helpers.DurationCalculation(expiresAt), scheduler.TypeExpireMoviePass, taskPayload)
	if err != nil {
		return response.MoviePass{}, err
	}

	pass := entity.MoviePass{
		UserID:    userID,
		Status:    entity.PassStatusActive,
		ExpiresAt: expiresAt,
		TaskID:    taskID,
	}
	if err := u.repo.UpsertMoviePass(ctx, pass); err != nil {
		return response.MoviePass{}, err
	}

	return response.MoviePass{
		UserID:    userID,
		Status:    pass.Status,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

func (u *usecase) Status(ctx context.Context, userID int64) (response.MoviePass, error) {
	pass, err := u.repo.FindMoviePassByUserID(ctx, userID)
	if err != nil {
		return response.MoviePass{}, err
	}
	if pass.UserID == 0 {
		return response.MoviePass{UserID: userID, Status: entity.PassStatusInactive}, nil
	}
	return response.MoviePass{
		UserID:    pass.UserID,
		Status:    pass.Status,
		ExpiresAt: pass.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// IsActive reports movie-pass discount eligibility for the booking flow.
func (u *usecase) IsActive(ctx context.Context, userID int64) (bool, error) {
	pass, err := u.repo.FindMoviePassByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return pass.Status == entity.PassStatusActive && pass.ExpiresAt.After(time.Now().UTC()), nil
}

func (u *usecase) ExpireMoviePass(ctx context.Context, payload *request.PassTask) error {
	deactivated, err := u.repo.DeactivateMoviePass(ctx, payload.UserID)
	if err != nil {
		return err
	}
	if !deactivated {
		u.log.Info(ctx, "expire movie pass skipped, pass not active", payload.UserID)
	}
	return nil
}
