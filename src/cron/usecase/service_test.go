package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/MMN3003/carbondesk/src/cron/repository"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobID = uuid.MustParse("8f0c1a52-4d1b-4e62-9a57-2b6f1d9e3c11")

func TestRunHoldsLockForDuration(t *testing.T) {
	s := NewService(cron.New(cron.WithSeconds()), repository.NewMemoryCronRepo(), logger.Nop())

	var nested bool
	ran := s.Run(context.Background(), jobID, "probe", func(ctx context.Context) error {
		nested = s.Run(ctx, jobID, "probe", func(context.Context) error { return nil })
		return nil
	})
	assert.True(t, ran)
	assert.False(t, nested)

	again := s.Run(context.Background(), jobID, "probe", func(context.Context) error { return errors.New("boom") })
	assert.True(t, again, "lock released after the first run")
	assert.True(t, s.Run(context.Background(), jobID, "probe", func(context.Context) error { return nil }), "lock released after a failing run")
}

func TestScheduleRejectsBadSpec(t *testing.T) {
	s := NewService(cron.New(cron.WithSeconds()), repository.NewMemoryCronRepo(), logger.Nop())

	_, err := s.Schedule("not a spec", jobID, "probe", func(context.Context) error { return nil })
	assert.Error(t, err)

	_, err = s.Schedule("0 */5 * * * *", jobID, "probe", func(context.Context) error { return nil })
	require.NoError(t, err)
}
