// Package worker runs the background jobs of the blog on a River queue.
package worker

import (
	"context"
	"fmt"
	"myblog/pkg/logger"
	"myblog/pkg/storage"
	"myblog/pkg/urlmeta"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// DefaultMaxWorkers is used when the configured worker count is not positive.
const DefaultMaxWorkers = 5

// Deps are the services jobs need.
type Deps struct {
	Storage  storage.Storage
	Resolver urlmeta.Resolver
}

// Start registers every worker and starts processing the default queue.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, maxWorkers int) (*river.Client[pgx.Tx], error) {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewLinkPreviewWorker(deps.Storage, deps.Resolver))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
