package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"

	"movie-booking-service/internal/module/pass/models/entity"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/log"
	"movie-booking-service/internal/pkg/scheduler"
)

type repositories struct {
	db                 *sqlx.DB
	log                log.Logger
	schedulerClient    *asynq.Client
	schedulerInspector *asynq.Inspector
}

type Repositories interface {
	// db
	UpsertMoviePass(ctx context.Context, pass entity.MoviePass) error
	FindMoviePassByUserID(ctx context.Context, userID int64) (entity.MoviePass, error)
	DeactivateMoviePass(ctx context.Context, userID int64) (bool, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processIn time.Duration, taskType string, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(db *sqlx.DB, log log.Logger, schedulerClient *asynq.Client, schedulerInspector *asynq.Inspector) Repositories {
	return &repositories{
		db:                 db,
		log:                log,
		schedulerClient:    schedulerClient,
		schedulerInspector: schedulerInspector,
	}
}

// UpsertMoviePass implements Repositories.
func (r *repositories) UpsertMoviePass(ctx context.Context, pass entity.MoviePass) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO movie_passes (user_id, status, expires_at, task_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET status = $2, expires_at = $3, task_id = $4, updated_at = NOW()
	`, pass.UserID, pass.Status, pass.ExpiresAt, pass.TaskID)
	if err != nil {
		return errors.InternalServerError("error upsert movie pass")
	}
	return nil
}

// FindMoviePassByUserID implements Repositories. A user without a pass
// reads as a zero-value (inactive) pass.
func (r *repositories) FindMoviePassByUserID(ctx context.Context, userID int64) (entity.MoviePass, error) {
	query := `
		SELECT user_id, status, expires_at, task_id, created_at, updated_at
		FROM movie_passes
		WHERE user_id = $1
	`
	var pass entity.MoviePass
	err := r.db.GetContext(ctx, &pass, query, userID)
	if err == sql.ErrNoRows {
		return entity.MoviePass{}, nil
	}
	if err != nil {
		return entity.MoviePass{}, errors.InternalServerError("error find movie pass by user id")
	}
	return pass, nil
}

// DeactivateMoviePass implements Repositories. Conditional on the pass
// still being active so redelivered expiry tasks no-op.
func (r *repositories) DeactivateMoviePass(ctx context.Context, userID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE movie_passes
		SET status = $1, updated_at = NOW()
		WHERE user_id = $2 AND status = $3
	`, entity.PassStatusInactive, userID, entity.PassStatusActive)
	if err != nil {
		return false, errors.InternalServerError("error deactivate movie pass")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error deactivate movie pass")
	}
	return affected > 0, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processIn time.Duration, taskType string, payload []byte) (string, error) {
	task := asynq.NewTask(taskType, payload)
	info, err := r.schedulerClient.EnqueueContext(ctx, task, asynq.ProcessIn(processIn))
	if err != nil {
		return "", errors.InternalServerError("error enqueue scheduler task")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories. A task that already ran or
// never existed is not an error.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	err := r.schedulerInspector.DeleteTask("default", taskID)
	if err != nil && !scheduler.TaskMissing(err) {
		return errors.InternalServerError("error delete scheduler task")
	}
	return nil
}
