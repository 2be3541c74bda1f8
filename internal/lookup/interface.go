package lookup

import (
	"context"

	"emailfinder/pkg/domain"
)

// Service stores lookup requests and hands them to the background worker.
//
//go:generate mockgen -package mocklookup -source=interface.go -destination=mock/mocklookup.go *
type Service interface {
	Enqueue(ctx context.Context, userID domain.UserID, query domain.PersonQuery) (*domain.Lookup, error)
	UserLookups(ctx context.Context,
		userID domain.UserID,
		status domain.LookupStatus,
		cursor string,
		limit uint) ([]domain.Lookup, string, error)
	Result(ctx context.Context, userID domain.UserID, lookupID domain.LookupID) (*domain.Lookup, error)
	Delete(ctx context.Context, userID domain.UserID, lookupID domain.LookupID) error
	// Run performs the lookup of a job and settles every pending lookup of
	// its key.
	Run(ctx context.Context, args JobArgs) error
}
