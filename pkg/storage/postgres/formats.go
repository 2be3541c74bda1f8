package postgres

import (
	"context"
	"fmt"

	"emailfinder/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	domainFormatsTable = "domain_formats"
)

// DomainFormat returns the remembered formats of a domain, or nil.
func (p *PgSQL) DomainFormat(ctx context.Context, domainName string) (*domain.DomainFormat, error) {
	var row PgDomainFormat
	found, err := p.Builder.From(domainFormatsTable).
		Where(goqu.I("domain").Eq(domainName)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain format: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// StoreDomainFormat upserts the formats of a domain; the last writer wins.
func (p *PgSQL) StoreDomainFormat(ctx context.Context, format domain.DomainFormat) error {
	var row PgDomainFormat
	if err := row.FromDomain(format); err != nil {
		return err
	}

	_, err := p.Builder.Insert(domainFormatsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("domain", goqu.Record{
			"formats":    goqu.I("excluded.formats"),
			"source":     goqu.I("excluded.source"),
			"updated_at": goqu.I("excluded.updated_at"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store domain format: %w", err)
	}

	return nil
}
