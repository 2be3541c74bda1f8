// Package lookup manages asynchronous email lookups: it stores requests,
// collapses equivalent ones into a single background job and serves their
// results.
package lookup

import (
	"context"
	"fmt"
	"time"

	"emailfinder/internal/config"
	"emailfinder/internal/finder"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"
	"emailfinder/pkg/storage"

	"go.uber.org/zap"
)

// Options configure how lookup jobs are enqueued and how results are reused.
type Options struct {
	// MaxAttempts is the maximum number of times the worker processes a job
	// before its lookups are marked failed.
	MaxAttempts int
	// ResultCacheTTL is how long a completed result is reused by new lookups
	// of an equivalent query instead of enqueueing a new job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Worker.MaxAttempts,
		ResultCacheTTL: cfg.Worker.ResultCacheTTL,
	}
}

type service struct {
	options Options
	storage storage.Storage
	finder  finder.Finder
}

// New creates a lookup Service backed by the provided storage. Jobs are run
// with f.
func New(storage storage.Storage, f finder.Finder, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		finder:  f,
	}
}

// Enqueue validates the query, stores a pending lookup and adds a find job
// for it. When River reports a job for the same key already exists and a
// completed result is available, the new lookup is completed right away with
// that result. Otherwise it stays pending and is completed along with the
// existing job.
func (s *service) Enqueue(ctx context.Context, userID domain.UserID, query domain.PersonQuery) (*domain.Lookup, error) {
	q, err := finder.NormalizeQuery(query)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	key := Key(q)

	var lookup *domain.Lookup
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreLookups(ctx, domain.Lookup{
			UserID: userID,
			Key:    key,
			Query:  q,
			Status: domain.LookupStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store lookup: %w", err)
		}
		lookup = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			Key:             key,
			Query:           q,
			maxAttempts:     s.options.MaxAttempts,
			uniqueJobPeriod: s.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		if jobAdded {
			return nil
		}

		last, err := tx.LastCompletedLookupByKey(ctx, key)
		if err != nil {
			return fmt.Errorf("could not get last completed lookup: %w", err)
		}
		if last == nil {
			// the running job completes every pending lookup of the key
			return nil
		}

		updated, err := tx.UpdateLookupByID(ctx, lookup.ID, storage.LookupUpdates{
			Status: domain.LookupStatusCompleted,
			Result: &last.Result,
		})
		if err != nil {
			return fmt.Errorf("could not update lookup: %w", err)
		}
		lookup = updated

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue lookup: %w", err)
	}

	logger.Debug(ctx, "lookup enqueued",
		zap.String("key", key),
		zap.String("status", string(lookup.Status)))

	return lookup, nil
}

// UserLookups returns a page of lookups of a user filtered by status. The
// cursor is an RFC3339 timestamp, and the next cursor is empty on the last
// page.
func (s *service) UserLookups(ctx context.Context,
	userID domain.UserID,
	status domain.LookupStatus,
	cursor string,
	limit uint) ([]domain.Lookup, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserLookups(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user lookups: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Lookups, next, nil
}

// Result fetches a lookup of the user by ID.
func (s *service) Result(ctx context.Context, userID domain.UserID, lookupID domain.LookupID) (*domain.Lookup, error) {
	res, err := s.storage.LookupByID(ctx, userID, lookupID)
	if err != nil {
		return nil, fmt.Errorf("could not get lookup: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "lookup not found")
	}

	return res, nil
}

// Delete soft deletes a lookup of the user. The job is left in the queue;
// the worker skips keys without pending lookups.
func (s *service) Delete(ctx context.Context, userID domain.UserID, lookupID domain.LookupID) error {
	res, err := s.storage.DeleteLookup(ctx, userID, lookupID)
	if err != nil {
		return fmt.Errorf("could not delete lookup: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "lookup not found")
	}

	return nil
}

// Run finds the emails of the job query and stores the result on every
// pending lookup of the key. Keys without pending lookups, because they were
// deleted or completed from a cached result, are skipped.
//
// Invalid queries and unresolvable companies fail the lookups at once and the
// error is returned unchanged. Other errors only fail the lookups on the last
// attempt so the job can be retried. A lookup interrupted by ctx leaves the
// lookups pending for the next attempt.
func (s *service) Run(ctx context.Context, args JobArgs) error {
	pending, err := s.storage.PendingLookupCountByKey(ctx, args.Key)
	if err != nil {
		return fmt.Errorf("could not count pending lookups: %w", err)
	}
	if pending == 0 {
		logger.Info(ctx, "no pending lookups, skipping")

		return nil
	}

	res, err := s.finder.Find(ctx, args.Query)
	if err != nil && ctx.Err() != nil {
		logger.Warn(ctx, "lookup interrupted", zap.Error(err))

		return fmt.Errorf("lookup interrupted: %w", err)
	}
	if err != nil {
		msg := err.Error()
		updates := storage.LookupUpdates{
			Status:      domain.LookupStatusFailed,
			LastError:   &msg,
			MaxAttempts: s.options.MaxAttempts,
		}
		if serrors.Permanent(err) {
			updates.MaxAttempts = 0
		}

		if uErr := s.storage.UpdatePendingLookupsByKey(ctx, args.Key, updates); uErr != nil {
			logger.Error(ctx, "could not record lookup failure", zap.Error(uErr))
		}

		return err //nolint: wrapcheck
	}

	empty := ""
	if err := s.storage.UpdatePendingLookupsByKey(ctx, args.Key, storage.LookupUpdates{
		Status:    domain.LookupStatusCompleted,
		Result:    res,
		LastError: &empty,
	}); err != nil {
		return fmt.Errorf("could not store lookup result: %w", err)
	}

	logger.Info(ctx, "lookups completed",
		zap.Int64("pending", pending),
		zap.Int("emails", len(res.Emails)))

	return nil
}
