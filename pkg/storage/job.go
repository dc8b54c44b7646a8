package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend and
// should join the surrounding transaction when there is one, so a job only
// becomes visible once the data it refers to is committed.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It returns false
	// when the job was skipped as a duplicate of an existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
