package worker

import (
	"context"
	"fmt"
	"time"

	"emailfinder/internal/lookup"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// LookupWorker is a River worker running find jobs through a lookup.Service.
// Invalid queries and unresolvable companies cancel the job since retrying
// cannot change the outcome; any other error is returned so River retries it.
type LookupWorker struct {
	river.WorkerDefaults[lookup.JobArgs]

	lookups lookup.Service
	timeout time.Duration
}

// NewLookupWorker creates a LookupWorker. A zero timeout keeps River's default.
func NewLookupWorker(lookups lookup.Service, timeout time.Duration) *LookupWorker {
	return &LookupWorker{
		lookups: lookups,
		timeout: timeout,
	}
}

// Timeout bounds a single job run.
func (w *LookupWorker) Timeout(*river.Job[lookup.JobArgs]) time.Duration {
	return w.timeout
}

// Work runs a single find job.
func (w *LookupWorker) Work(ctx context.Context, job *river.Job[lookup.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("key", job.Args.Key))

	start := time.Now()
	if err := w.lookups.Run(ctx, job.Args); err != nil {
		if serrors.Permanent(err) {
			logger.Warn(ctx, "lookup cannot succeed, cancelling job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in running lookup", zap.Error(err))

		return fmt.Errorf("could not run lookup: %w", err)
	}

	logger.Info(ctx, "lookup job finished", zap.Duration("took", time.Since(start)))

	return nil
}
