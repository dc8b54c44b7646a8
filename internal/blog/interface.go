package blog

import (
	"context"
	"myblog/pkg/domain"
	"myblog/pkg/storage"
)

//go:generate mockgen -package mockblog -source=interface.go -destination=mock/mockblog.go *

// Categories manages article categories.
type Categories interface {
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id int64, in CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*domain.Category, error)
	BySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context, q PageQuery) (*domain.Page[domain.Category], error)
	// All lists every category by name; withArticlesOnly hides empty ones.
	All(ctx context.Context, withArticlesOnly bool) ([]domain.Category, error)
}

// Tags manages article tags.
type Tags interface {
	Create(ctx context.Context, in TagInput) (*domain.Tag, error)
	Update(ctx context.Context, id int64, in TagInput) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*domain.Tag, error)
	BySlug(ctx context.Context, slug string) (*domain.Tag, error)
	List(ctx context.Context, q PageQuery) (*domain.Page[domain.Tag], error)
	All(ctx context.Context, withArticlesOnly bool) ([]domain.Tag, error)
	// Popular lists the tags used by most articles.
	Popular(ctx context.Context, limit int) ([]domain.Tag, error)
}

// Articles manages articles and their public counters.
type Articles interface {
	Create(ctx context.Context, in ArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id int64, in ArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*domain.Article, error)
	BySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, filter storage.ArticleFilter, q PageQuery) (*domain.Page[domain.Article], error)
	// Count adds one view or like.
	Count(ctx context.Context, id int64, counter storage.ArticleCounter) error
	// SetFlags publishes, unpublishes, pins or unpins an article.
	SetFlags(ctx context.Context, id int64, flags storage.ArticleFlags) (*domain.Article, error)
}

// Messages manages one message board, either article comments or the guestbook.
type Messages interface {
	Board() domain.Board
	// Post stores a visitor message. It starts unapproved.
	Post(ctx context.Context, in MessageInput, client ClientInfo) (*domain.Message, error)
	Update(ctx context.Context, id int64, in MessageInput) (*domain.Message, error)
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*domain.Message, error)
	List(ctx context.Context, filter storage.MessageFilter, q PageQuery) (*domain.Page[domain.Message], error)
	SetApproved(ctx context.Context, id int64, approved bool) (*domain.Message, error)
	Like(ctx context.Context, id int64) error
}

// FriendLinks manages friend link applications.
type FriendLinks interface {
	// Apply stores a visitor application. It starts unapproved and its preview
	// is filled in the background when logo or description is missing.
	Apply(ctx context.Context, in FriendLinkInput) (*domain.FriendLink, error)
	Update(ctx context.Context, id int64, in FriendLinkInput) (*domain.FriendLink, error)
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*domain.FriendLink, error)
	List(ctx context.Context, approved *bool, q PageQuery) (*domain.Page[domain.FriendLink], error)
	Approved(ctx context.Context) ([]domain.FriendLink, error)
	SetApproved(ctx context.Context, id int64, approved bool) (*domain.FriendLink, error)
	Click(ctx context.Context, id int64) error
}

// Settings manages system settings.
type Settings interface {
	Create(ctx context.Context, in SettingInput) (*domain.Setting, error)
	Update(ctx context.Context, id int64, in SettingInput) (*domain.Setting, error)
	Delete(ctx context.Context, id int64) error
	ByID(ctx context.Context, id int64) (*domain.Setting, error)
	ByKey(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context, filter storage.SettingFilter) ([]domain.Setting, error)
	// Upsert creates or updates all settings by key in one transaction.
	Upsert(ctx context.Context, in []SettingInput) ([]domain.Setting, error)
}
