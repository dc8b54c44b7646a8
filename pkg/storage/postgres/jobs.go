package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"myblog/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// AddJob enqueues args on the River queue. Inside a transaction the job is
// written with it and only becomes visible to workers after commit. It
// reports false when a unique job with the same args is already queued.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		var client *river.Client[*sql.Tx]
		if client, err = insertOnlyClient(ctx, nil); err == nil {
			res, err = client.InsertTx(ctx, db, args, opts)
		}
	case *sql.DB:
		var client *river.Client[*sql.Tx]
		if client, err = insertOnlyClient(ctx, db); err == nil {
			res, err = client.Insert(ctx, args, opts)
		}
	default:
		return false, fmt.Errorf("could not insert %s job: unsupported executor %T", args.Kind(), p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	if res.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "job already queued", zap.String("kind", args.Kind()), zap.Int64("jobID", res.Job.ID))

		return false, nil
	}

	return true, nil
}

// insertOnlyClient builds a River client without workers. A nil db is enough
// for transactional inserts.
func insertOnlyClient(ctx context.Context, db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{Logger: logger.Slog(ctx)})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}
