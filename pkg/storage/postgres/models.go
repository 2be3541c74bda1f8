package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"emailfinder/pkg/domain"

	"github.com/google/uuid"
)

type PgLookup struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Key    string          `db:"key"`
	Query  json.RawMessage `db:"query"`
	Status string          `db:"status"`
	Result json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgLookup) ToDomain() (*domain.Lookup, error) {
	var query domain.PersonQuery
	if err := json.Unmarshal(p.Query, &query); err != nil {
		return nil, fmt.Errorf("could not unmarshal lookup query: %w", err)
	}

	var result domain.FindResult
	if len(p.Result) > 0 {
		if err := json.Unmarshal(p.Result, &result); err != nil {
			return nil, fmt.Errorf("could not unmarshal lookup result: %w", err)
		}
	}

	return &domain.Lookup{
		ID:        domain.LookupID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Key:       p.Key,
		Query:     query,
		Status:    domain.LookupStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgLookup) FromDomain(lookup domain.Lookup) error {
	query, err := json.Marshal(lookup.Query)
	if err != nil {
		return fmt.Errorf("could not marshal lookup query: %w", err)
	}
	result, err := json.Marshal(lookup.Result)
	if err != nil {
		return fmt.Errorf("could not marshal lookup result: %w", err)
	}

	*p = PgLookup{
		ID:       uuid.UUID(lookup.ID),
		UserID:   uuid.UUID(lookup.UserID),
		Key:      lookup.Key,
		Query:    query,
		Status:   string(lookup.Status),
		Result:   result,
		Attempts: lookup.Attempts,
		LastError: sql.NullString{
			String: lookup.LastError,
			Valid:  lookup.LastError != "",
		},
		CreatedAt: lookup.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  lookup.UpdatedAt,
			Valid: !lookup.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  lookup.DeletedAt,
			Valid: !lookup.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainLookupsToPg(lookups []domain.Lookup) ([]PgLookup, error) {
	out := make([]PgLookup, len(lookups))
	for i := range out {
		if err := out[i].FromDomain(lookups[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgLookupsToDomain(lookups []PgLookup) ([]domain.Lookup, error) {
	out := make([]domain.Lookup, 0, len(lookups))
	for _, lookup := range lookups {
		d, err := lookup.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// PgDomainFormat is a row of the domain_formats table. Formats are stored as
// a JSON array in priority order.
type PgDomainFormat struct {
	Domain    string          `db:"domain"`
	Formats   json.RawMessage `db:"formats"`
	Source    string          `db:"source"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (p *PgDomainFormat) ToDomain() (*domain.DomainFormat, error) {
	var names []string
	if err := json.Unmarshal(p.Formats, &names); err != nil {
		return nil, fmt.Errorf("could not unmarshal domain formats: %w", err)
	}

	formats := make([]domain.EmailFormat, 0, len(names))
	for _, n := range names {
		// formats removed from the application are skipped
		if f, ok := domain.ParseEmailFormat(n); ok {
			formats = append(formats, f)
		}
	}

	return &domain.DomainFormat{
		Domain:    p.Domain,
		Formats:   formats,
		Source:    p.Source,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func (p *PgDomainFormat) FromDomain(format domain.DomainFormat) error {
	formats, err := json.Marshal(format.Formats)
	if err != nil {
		return fmt.Errorf("could not marshal domain formats: %w", err)
	}

	*p = PgDomainFormat{
		Domain:    format.Domain,
		Formats:   formats,
		Source:    format.Source,
		UpdatedAt: format.UpdatedAt,
	}

	return nil
}
