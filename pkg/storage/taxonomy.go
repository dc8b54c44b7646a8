package storage

import (
	"context"
	"myblog/pkg/domain"
)

// CategoryStorage persists categories. Lookups return nil when nothing matches.
type CategoryStorage interface {
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	// UpdateCategory replaces the editable fields of the category with c.ID.
	UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) (bool, error)
	CategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Categories(ctx context.Context, page PageRequest) ([]domain.Category, int64, error)
	// AllCategories lists every category by name, optionally only those with articles.
	AllCategories(ctx context.Context, withArticlesOnly bool) ([]domain.Category, error)
}

// TagStorage persists tags. Lookups return nil when nothing matches.
type TagStorage interface {
	CreateTag(ctx context.Context, t domain.Tag) (*domain.Tag, error)
	UpdateTag(ctx context.Context, t domain.Tag) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id int64) (bool, error)
	TagByID(ctx context.Context, id int64) (*domain.Tag, error)
	TagBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	Tags(ctx context.Context, page PageRequest) ([]domain.Tag, int64, error)
	AllTags(ctx context.Context, withArticlesOnly bool) ([]domain.Tag, error)
	// PopularTags returns the tags with the most articles first.
	PopularTags(ctx context.Context, limit uint) ([]domain.Tag, error)
}
