package blog

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/logger"
	"myblog/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

type friendLinks struct {
	storage storage.Storage
}

// NewFriendLinks creates a FriendLinks service backed by storage.
func NewFriendLinks(storage storage.Storage) FriendLinks {
	return &friendLinks{storage: storage}
}

func (f *friendLinks) normalize(in FriendLinkInput) (domain.FriendLink, error) {
	in.Name = cleanText(in.Name)
	in.Description = cleanText(in.Description)
	if err := check(in); err != nil {
		return domain.FriendLink{}, err
	}

	return domain.FriendLink{
		Name:        in.Name,
		URL:         strings.TrimSpace(in.URL),
		Description: in.Description,
		Logo:        strings.TrimSpace(in.Logo),
		Email:       in.Email,
		SortOrder:   in.SortOrder,
		Approved:    in.Approved,
	}, nil
}

func (f *friendLinks) Apply(ctx context.Context, in FriendLinkInput) (*domain.FriendLink, error) {
	link, err := f.normalize(in)
	if err != nil {
		return nil, err
	}
	link.Approved = false

	var created *domain.FriendLink
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err = tx.CreateFriendLink(ctx, link)
		if err != nil {
			return storeErr(err, "create", "friend link")
		}
		if !created.NeedsPreview() {
			return nil
		}

		// the job becomes visible only if the link is committed
		if _, err := tx.AddJob(ctx, LinkPreviewArgs{FriendLinkID: created.ID}, nil); err != nil {
			return fmt.Errorf("could not add preview job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "friend link application received",
		zap.Int64("friendLinkID", created.ID), zap.Bool("preview", created.NeedsPreview()))

	return created, nil
}

func (f *friendLinks) Update(ctx context.Context, id int64, in FriendLinkInput) (*domain.FriendLink, error) {
	link, err := f.normalize(in)
	if err != nil {
		return nil, err
	}
	link.ID = id

	updated, err := f.storage.UpdateFriendLink(ctx, link)
	if err != nil {
		return nil, storeErr(err, "update", "friend link")
	}
	if updated == nil {
		return nil, notFound("friend link")
	}

	return updated, nil
}

func (f *friendLinks) Delete(ctx context.Context, id int64) error {
	deleted, err := f.storage.DeleteFriendLink(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete friend link: %w", err)
	}
	if !deleted {
		return notFound("friend link")
	}

	return nil
}

func (f *friendLinks) ByID(ctx context.Context, id int64) (*domain.FriendLink, error) {
	link, err := f.storage.FriendLinkByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get friend link: %w", err)
	}
	if link == nil {
		return nil, notFound("friend link")
	}

	return link, nil
}

func (f *friendLinks) List(
	ctx context.Context,
	approved *bool,
	q PageQuery,
) (*domain.Page[domain.FriendLink], error) {
	req, err := q.request("name", "sortOrder", "clickCount", "updatedAt")
	if err != nil {
		return nil, err
	}

	items, total, err := f.storage.FriendLinks(ctx, approved, req)
	if err != nil {
		return nil, fmt.Errorf("could not list friend links: %w", err)
	}

	return newPage(items, req, total), nil
}

func (f *friendLinks) Approved(ctx context.Context) ([]domain.FriendLink, error) {
	items, err := f.storage.ApprovedFriendLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list friend links: %w", err)
	}

	return items, nil
}

func (f *friendLinks) SetApproved(ctx context.Context, id int64, approved bool) (*domain.FriendLink, error) {
	link, err := f.storage.SetFriendLinkApproved(ctx, id, approved)
	if err != nil {
		return nil, fmt.Errorf("could not moderate friend link: %w", err)
	}
	if link == nil {
		return nil, notFound("friend link")
	}

	return link, nil
}

func (f *friendLinks) Click(ctx context.Context, id int64) error {
	found, err := f.storage.ClickFriendLink(ctx, id)
	if err != nil {
		return fmt.Errorf("could not count friend link click: %w", err)
	}
	if !found {
		return notFound("friend link")
	}

	return nil
}
