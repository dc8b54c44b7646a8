package blog

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
)

// DefaultPopularTags is the size of the popular tag list.
const DefaultPopularTags = 10

type tags struct {
	storage storage.Storage
}

// NewTags creates a Tags service backed by storage.
func NewTags(storage storage.Storage) Tags {
	return &tags{storage: storage}
}

func (t *tags) normalize(in TagInput) (domain.Tag, error) {
	in.Name = cleanText(in.Name)
	if err := check(in); err != nil {
		return domain.Tag{}, err
	}
	slug := slugOr(in.Slug, in.Name)
	if slug == "" {
		return domain.Tag{}, serrors.With(serrors.ErrBadRequest, "slug is required")
	}

	return domain.Tag{Name: in.Name, Slug: slug, Color: in.Color}, nil
}

func (t *tags) Create(ctx context.Context, in TagInput) (*domain.Tag, error) {
	tag, err := t.normalize(in)
	if err != nil {
		return nil, err
	}

	created, err := t.storage.CreateTag(ctx, tag)
	if err != nil {
		return nil, storeErr(err, "create", "tag")
	}

	return created, nil
}

func (t *tags) Update(ctx context.Context, id int64, in TagInput) (*domain.Tag, error) {
	tag, err := t.normalize(in)
	if err != nil {
		return nil, err
	}
	tag.ID = id

	updated, err := t.storage.UpdateTag(ctx, tag)
	if err != nil {
		return nil, storeErr(err, "update", "tag")
	}
	if updated == nil {
		return nil, notFound("tag")
	}

	return updated, nil
}

func (t *tags) Delete(ctx context.Context, id int64) error {
	deleted, err := t.storage.DeleteTag(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete tag: %w", err)
	}
	if !deleted {
		return notFound("tag")
	}

	return nil
}

func (t *tags) ByID(ctx context.Context, id int64) (*domain.Tag, error) {
	tag, err := t.storage.TagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get tag: %w", err)
	}
	if tag == nil {
		return nil, notFound("tag")
	}

	return tag, nil
}

func (t *tags) BySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	tag, err := t.storage.TagBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("could not get tag: %w", err)
	}
	if tag == nil {
		return nil, notFound("tag")
	}

	return tag, nil
}

func (t *tags) List(ctx context.Context, q PageQuery) (*domain.Page[domain.Tag], error) {
	req, err := q.request("name", "articleCount", "updatedAt")
	if err != nil {
		return nil, err
	}

	items, total, err := t.storage.Tags(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not list tags: %w", err)
	}

	return newPage(items, req, total), nil
}

func (t *tags) All(ctx context.Context, withArticlesOnly bool) ([]domain.Tag, error) {
	items, err := t.storage.AllTags(ctx, withArticlesOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list tags: %w", err)
	}

	return items, nil
}

func (t *tags) Popular(ctx context.Context, limit int) ([]domain.Tag, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPopularTags
	}

	items, err := t.storage.PopularTags(ctx, uint(limit)) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not list popular tags: %w", err)
	}

	return items, nil
}
