package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible to workers once the transaction commits,
// so a lookup row and its job are stored atomically.
//
// The returned bool is false when River skipped the insert because a job with
// the same unique arguments already exists, which is how concurrent lookups
// of the same person end up sharing one job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = insertTx(ctx, tx, args, opts)
	} else {
		res, err = insert(ctx, p.DB.(*sql.DB), args, opts)
	}
	if err != nil {
		return false, err
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

func insertTx(ctx context.Context, tx *sql.Tx, args river.JobArgs, opts *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return nil, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
	}

	return res, nil
}

func insert(ctx context.Context, db *sql.DB, args river.JobArgs, opts *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := client.Insert(ctx, args, opts)
	if err != nil {
		return nil, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
	}

	return res, nil
}
