package worker

import (
	"context"
	"errors"
	"fmt"
	"myblog/internal/blog"
	"myblog/pkg/logger"
	"myblog/pkg/storage"
	"myblog/pkg/urlmeta"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// LinkPreviewWorker fills the blank logo and description of a friend link
// from the metadata of the linked site.
type LinkPreviewWorker struct {
	river.WorkerDefaults[blog.LinkPreviewArgs]

	storage  storage.Storage
	resolver urlmeta.Resolver
}

// NewLinkPreviewWorker creates a LinkPreviewWorker.
func NewLinkPreviewWorker(storage storage.Storage, resolver urlmeta.Resolver) *LinkPreviewWorker {
	return &LinkPreviewWorker{storage: storage, resolver: resolver}
}

func (w *LinkPreviewWorker) Work(ctx context.Context, job *river.Job[blog.LinkPreviewArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("friendLinkID", job.Args.FriendLinkID))

	link, err := w.storage.FriendLinkByID(ctx, job.Args.FriendLinkID)
	if err != nil {
		return fmt.Errorf("could not get friend link: %w", err)
	}
	if link == nil {
		logger.Info(ctx, "friend link is gone, skipping preview")

		return nil
	}
	if !link.NeedsPreview() {
		return nil
	}

	meta := w.resolver.Resolve(ctx, link.URL)
	if !meta.Success {
		logger.Warn(ctx, "could not resolve friend link preview",
			zap.String("URL", link.URL), zap.String("error", meta.Error))

		return river.JobCancel(errors.New(meta.Error)) //nolint: wrapcheck
	}

	if _, err := w.storage.FillFriendLinkPreview(ctx, link.ID, meta.Logo, meta.Description); err != nil {
		logger.Error(ctx, "could not store friend link preview", zap.Error(err))

		return fmt.Errorf("could not store friend link preview: %w", err)
	}

	logger.Info(ctx, "friend link preview stored",
		zap.Bool("logo", meta.Logo != ""), zap.Bool("description", meta.Description != ""))

	return nil
}
