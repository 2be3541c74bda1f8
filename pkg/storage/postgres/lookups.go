package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"emailfinder/pkg/domain"
	"emailfinder/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	lookupsTable = "lookups"
)

func (p *PgSQL) StoreLookups(ctx context.Context, lookups ...domain.Lookup) ([]domain.Lookup, error) {
	if len(lookups) == 0 {
		return nil, nil
	}

	pgLookups, err := domainLookupsToPg(lookups)
	if err != nil {
		return nil, err
	}

	var result []PgLookup
	if err := p.Builder.Insert(lookupsTable).
		Rows(pgLookups).
		Returning(&PgLookup{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store lookups into pg: %w", err)
	}

	return pgLookupsToDomain(result)
}

// updateRecord builds the SET clause shared by single and bulk updates.
// Attempts is incremented by 1 and updated_at is set.
func updateRecord(updates storage.LookupUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
		if updates.Status == domain.LookupStatusFailed && updates.MaxAttempts > 0 {
			// stay pending until the last attempt
			rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
				updates.MaxAttempts, string(domain.LookupStatusFailed))
		}
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingLookupsByKey updates all pending lookups for the given key with provided fields.
func (p *PgSQL) UpdatePendingLookupsByKey(ctx context.Context, key string, updates storage.LookupUpdates) error {
	rec, err := updateRecord(updates)
	if err != nil {
		return err
	}

	_, err = p.Builder.Update(lookupsTable).
		Set(rec).Where(
		goqu.I("key").Eq(key),
		goqu.I("status").Eq(string(domain.LookupStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending lookups by key in pg: %w", err)
	}

	return nil
}

// PendingLookupCountByKey counts pending, non-deleted lookups of a key.
func (p *PgSQL) PendingLookupCountByKey(ctx context.Context, key string) (int64, error) {
	count, err := p.Builder.From(lookupsTable).Where(
		goqu.I("key").Eq(key),
		goqu.I("status").Eq(string(domain.LookupStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending lookups by key in pg: %w", err)
	}

	return count, nil
}

// UpdateLookupByID updates a single lookup and returns it, or nil when it
// does not exist.
func (p *PgSQL) UpdateLookupByID(ctx context.Context, id domain.LookupID, updates storage.LookupUpdates) (*domain.Lookup, error) {
	rec, err := updateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgLookup
	found, err := p.Builder.Update(lookupsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLookup{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update lookup by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteLookup performs a soft delete by setting deleted_at timestamp
// for a given lookup id and user, returning the deleted record.
func (p *PgSQL) DeleteLookup(ctx context.Context, userID domain.UserID, id domain.LookupID) (*domain.Lookup, error) {
	var row PgLookup
	found, err := p.Builder.Update(lookupsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLookup{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete lookup in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserLookups returns a list of lookups for a user filtered by optional status and cursor and limited by limit.
// Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserLookups(ctx context.Context,
	userID domain.UserID,
	status domain.LookupStatus,
	cursor time.Time,
	limit uint) (storage.UserLookups, error) {
	w := []exp.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(lookupsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgLookup
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserLookups{}, fmt.Errorf("could not fetch user lookups from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgLookupsToDomain(rows)
	if err != nil {
		return storage.UserLookups{}, err
	}

	return storage.UserLookups{
		Lookups:    domainRows,
		NextCursor: nextCursor,
	}, nil
}

// LookupByID returns a lookup by its ID, excluding soft-deleted rows.
func (p *PgSQL) LookupByID(ctx context.Context, userID domain.UserID, id domain.LookupID) (*domain.Lookup, error) {
	var row PgLookup
	found, err := p.Builder.From(lookupsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lookup by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastCompletedLookupByKey returns the most recently updated completed lookup
// of a key. Soft-deleted lookups still count: their result remains valid.
func (p *PgSQL) LastCompletedLookupByKey(ctx context.Context, key string) (*domain.Lookup, error) {
	var row PgLookup
	found, err := p.Builder.From(lookupsTable).
		Where(
			goqu.I("key").Eq(key),
			goqu.I("status").Eq(string(domain.LookupStatusCompleted)),
		).
		Order(goqu.I("updated_at").Desc().NullsLast(), goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed lookup by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
