package storage

import (
	"context"

	"emailfinder/pkg/domain"
)

// FormatStorage persists email formats discovered per domain so later
// lookups, in this or other processes, can skip format inference.
type FormatStorage interface {
	// DomainFormat returns the remembered formats of a domain, or nil when
	// nothing is stored.
	DomainFormat(ctx context.Context, domainName string) (*domain.DomainFormat, error)
	// StoreDomainFormat inserts or replaces the formats of a domain. The last
	// writer wins.
	StoreDomainFormat(ctx context.Context, format domain.DomainFormat) error
}
