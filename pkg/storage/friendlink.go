package storage

import (
	"context"
	"myblog/pkg/domain"
)

// FriendLinkStorage persists friend links. Lookups return nil when nothing matches.
type FriendLinkStorage interface {
	CreateFriendLink(ctx context.Context, f domain.FriendLink) (*domain.FriendLink, error)
	UpdateFriendLink(ctx context.Context, f domain.FriendLink) (*domain.FriendLink, error)
	DeleteFriendLink(ctx context.Context, id int64) (bool, error)
	FriendLinkByID(ctx context.Context, id int64) (*domain.FriendLink, error)
	// FriendLinks pages links, optionally filtered by approval state.
	FriendLinks(ctx context.Context, approved *bool, page PageRequest) ([]domain.FriendLink, int64, error)
	// ApprovedFriendLinks lists approved links by sort order.
	ApprovedFriendLinks(ctx context.Context) ([]domain.FriendLink, error)
	SetFriendLinkApproved(ctx context.Context, id int64, approved bool) (*domain.FriendLink, error)
	ClickFriendLink(ctx context.Context, id int64) (bool, error)
	// FillFriendLinkPreview sets logo and description only where they are
	// still empty, so edits made in the meantime win.
	FillFriendLinkPreview(ctx context.Context, id int64, logo, description string) (*domain.FriendLink, error)
}
