package scheduler_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"movie-booking-service/internal/pkg/scheduler"
)

func TestTaskMissing(t *testing.T) {
	t.Run("matches the wrapped inspector sentinels", func(t *testing.T) {
		// the inspector returns its sentinels wrapped, not bare
		assert.True(t, scheduler.TaskMissing(fmt.Errorf("asynq: %w", asynq.ErrTaskNotFound)))
		assert.True(t, scheduler.TaskMissing(fmt.Errorf("asynq: %w", asynq.ErrQueueNotFound)))
		assert.True(t, scheduler.TaskMissing(asynq.ErrTaskNotFound))
	})

	t.Run("other errors are not missing tasks", func(t *testing.T) {
		assert.False(t, scheduler.TaskMissing(errors.New("connection refused")))
		assert.False(t, scheduler.TaskMissing(nil))
	})
}
