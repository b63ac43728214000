package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"

	"movie-booking-service/config"
	"movie-booking-service/internal/pkg/log"
)

// Task types handled by the asynq worker pool. Payloads are JSON documents
// keyed by show, booking or user id so a cancel-and-reschedule can target
// all pending tasks for one key. Handlers must be idempotent: asynq gives
// at-least-once delivery.
const (
	TypeStartShow            = "start_show"
	TypeCompleteShow         = "complete_show"
	TypeReleaseExpiredSeats  = "release_expired_seats"
	TypeCancelPendingBooking = "cancel_pending_booking"
	TypeExpireMoviePass      = "expire_movie_pass"
	TypeVendorPayout         = "vendor_payout"
)

type Scheduler struct {
	Log log.Logger
}

// TaskMissing reports whether an inspector error means the task or its
// queue no longer exists. asynq returns these sentinels wrapped, so they
// have to be unwrapped rather than compared directly.
func TaskMissing(err error) bool {
	return errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound)
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) InitInspector(cfg *config.RedisConfig) *asynq.Inspector {
	return asynq.NewInspector(redisOpt(cfg))
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, bindAddress string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	http.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(bindAddress, nil)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

// StartHandler runs the polling worker pool. It blocks, so callers run it
// in its own goroutine. A failed task execution is logged by asynq and
// retried; handler idempotency makes the retries safe.
func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

// StartPeriodic registers cron-style recurring tasks (the monthly vendor
// payout) and runs the asynq scheduler. Blocks like StartHandler.
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, cronSpecs []string, taskTypes []string) {
	ctx := context.Background()
	sched := asynq.NewScheduler(redisOpt(cfg), nil)

	for i, spec := range cronSpecs {
		if _, err := sched.Register(spec, asynq.NewTask(taskTypes[i], nil)); err != nil {
			s.Log.Error(ctx, "error register periodic task", taskTypes[i], err)
		}
	}

	if err := sched.Run(); err != nil {
		s.Log.Error(ctx, "error start periodic scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	// mux maps a type to a handler
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
