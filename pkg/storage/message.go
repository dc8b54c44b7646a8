package storage

import (
	"context"
	"myblog/pkg/domain"
)

// MessageFilter narrows message list queries. Nil fields disable a filter.
type MessageFilter struct {
	ArticleID *int64
	ParentID  *int64
	Approved  *bool
}

// MessageStorage persists comments and guestbook messages. The board selects
// the table. Lookups return nil when nothing matches.
type MessageStorage interface {
	CreateMessage(ctx context.Context, board domain.Board, msg domain.Message) (*domain.Message, error)
	// UpdateMessage replaces author, email, website and content of msg.ID.
	UpdateMessage(ctx context.Context, board domain.Board, msg domain.Message) (*domain.Message, error)
	DeleteMessage(ctx context.Context, board domain.Board, id int64) (bool, error)
	MessageByID(ctx context.Context, board domain.Board, id int64) (*domain.Message, error)
	Messages(ctx context.Context,
		board domain.Board,
		filter MessageFilter,
		page PageRequest) ([]domain.Message, int64, error)
	// SetMessageApproved changes moderation state. For comments it also
	// refreshes the article's comment count.
	SetMessageApproved(ctx context.Context, board domain.Board, id int64, approved bool) (*domain.Message, error)
	LikeMessage(ctx context.Context, board domain.Board, id int64) (bool, error)
}
