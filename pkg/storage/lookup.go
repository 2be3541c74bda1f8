package storage

import (
	"context"
	"time"

	"emailfinder/pkg/domain"
)

// LookupUpdates describes a set of optional fields that can be applied to an
// existing lookup during an update. Only non-nil fields will be updated.
type LookupUpdates struct {
	// Status is the new status to set for the lookup.
	Status domain.LookupStatus
	// Result, when provided, replaces the stored lookup result payload.
	Result *domain.FindResult
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment reach
	// this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// UserLookups groups a page of lookups returned for a user together with an
// optional NextCursor used for pagination.
type UserLookups struct {
	// Lookups contains the current page of lookup records.
	Lookups []domain.Lookup
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// LookupStorage defines CRUD and query operations related to lookups. Lookups
// of equivalent queries share a key, and background processing updates every
// pending lookup of a key at once.
type LookupStorage interface {
	// StoreLookups inserts one or more lookups and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreLookups(ctx context.Context, lookups ...domain.Lookup) ([]domain.Lookup, error)
	// UpdatePendingLookupsByKey updates all pending lookups for the given key
	// using the provided field set.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment reach MaxAttempts; otherwise status
	//   remains unchanged (i.e., stays Pending).
	UpdatePendingLookupsByKey(ctx context.Context, key string, updates LookupUpdates) error
	// PendingLookupCountByKey returns the number of pending lookups for the
	// given key across all users. Soft-deleted records are excluded.
	PendingLookupCountByKey(ctx context.Context, key string) (int64, error)
	// UpdateLookupByID updates a single lookup and returns the updated row.
	// Soft-deleted rows are ignored and updated_at is set automatically.
	UpdateLookupByID(ctx context.Context, ID domain.LookupID, updates LookupUpdates) (*domain.Lookup, error)
	// DeleteLookup performs a soft delete for the given lookup ID and user ID
	// and returns the deleted lookup, or nil if it was not found.
	DeleteLookup(ctx context.Context, userID domain.UserID, ID domain.LookupID) (*domain.Lookup, error)
	// UserLookups returns a page of lookups for a user created before the
	// optional cursor time, limited by the given limit. If status is non-empty,
	// results are filtered to records with the given status.
	UserLookups(ctx context.Context,
		userID domain.UserID,
		status domain.LookupStatus,
		cursor time.Time,
		limit uint) (UserLookups, error)
	// LookupByID fetches a lookup by its ID for the given user, excluding
	// soft-deleted records. Returns nil when not found.
	LookupByID(ctx context.Context, userID domain.UserID, ID domain.LookupID) (*domain.Lookup, error)
	// LastCompletedLookupByKey returns the most recent completed lookup for a
	// key across all users, or nil when there is none.
	LastCompletedLookupByKey(ctx context.Context, key string) (*domain.Lookup, error)
}
