package storage

import (
	"context"
	"myblog/pkg/domain"
)

// ArticleFilter narrows article list queries. Zero values disable a filter.
type ArticleFilter struct {
	PublishedOnly bool
	PinnedOnly    bool
	CategoryID    int64
	TagID         int64
	// Query matches title, summary or content case-insensitively.
	Query string
}

// ArticleCounter names a public counter on articles.
type ArticleCounter string

const (
	// ArticleViews counts article views.
	ArticleViews ArticleCounter = "view_count"
	// ArticleLikes counts article likes.
	ArticleLikes ArticleCounter = "like_count"
)

// ArticleFlags changes publication state. Nil fields are left untouched.
type ArticleFlags struct {
	Published *bool
	Pinned    *bool
}

// ArticleStorage persists articles and their tag relations. Writes keep
// category and tag article counts up to date. Lookups return nil when
// nothing matches.
type ArticleStorage interface {
	// CreateArticle inserts a and links it to a.TagIDs.
	CreateArticle(ctx context.Context, a domain.Article) (*domain.Article, error)
	// UpdateArticle replaces the editable fields and the tag set of a.ID.
	UpdateArticle(ctx context.Context, a domain.Article) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id int64) (bool, error)
	ArticleByID(ctx context.Context, id int64) (*domain.Article, error)
	ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Articles(ctx context.Context, filter ArticleFilter, page PageRequest) ([]domain.Article, int64, error)
	// IncrementArticleCounter adds one to counter and reports whether the article exists.
	IncrementArticleCounter(ctx context.Context, id int64, counter ArticleCounter) (bool, error)
	// SetArticleFlags applies flags. Publishing sets published_at the first time.
	SetArticleFlags(ctx context.Context, id int64, flags ArticleFlags) (*domain.Article, error)
}
