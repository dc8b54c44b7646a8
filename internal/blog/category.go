package blog

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
)

type categories struct {
	storage storage.Storage
}

// NewCategories creates a Categories service backed by storage.
func NewCategories(storage storage.Storage) Categories {
	return &categories{storage: storage}
}

func (c *categories) normalize(in CategoryInput) (domain.Category, error) {
	in.Name = cleanText(in.Name)
	if err := check(in); err != nil {
		return domain.Category{}, err
	}
	slug := slugOr(in.Slug, in.Name)
	if slug == "" {
		return domain.Category{}, serrors.With(serrors.ErrBadRequest, "slug is required")
	}

	return domain.Category{
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		Color:       in.Color,
	}, nil
}

func (c *categories) Create(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	cat, err := c.normalize(in)
	if err != nil {
		return nil, err
	}

	created, err := c.storage.CreateCategory(ctx, cat)
	if err != nil {
		return nil, storeErr(err, "create", "category")
	}

	return created, nil
}

func (c *categories) Update(ctx context.Context, id int64, in CategoryInput) (*domain.Category, error) {
	cat, err := c.normalize(in)
	if err != nil {
		return nil, err
	}
	cat.ID = id

	updated, err := c.storage.UpdateCategory(ctx, cat)
	if err != nil {
		return nil, storeErr(err, "update", "category")
	}
	if updated == nil {
		return nil, notFound("category")
	}

	return updated, nil
}

func (c *categories) Delete(ctx context.Context, id int64) error {
	deleted, err := c.storage.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete category: %w", err)
	}
	if !deleted {
		return notFound("category")
	}

	return nil
}

func (c *categories) ByID(ctx context.Context, id int64) (*domain.Category, error) {
	cat, err := c.storage.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	if cat == nil {
		return nil, notFound("category")
	}

	return cat, nil
}

func (c *categories) BySlug(ctx context.Context, slug string) (*domain.Category, error) {
	cat, err := c.storage.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	if cat == nil {
		return nil, notFound("category")
	}

	return cat, nil
}

func (c *categories) List(ctx context.Context, q PageQuery) (*domain.Page[domain.Category], error) {
	req, err := q.request("name", "articleCount", "updatedAt")
	if err != nil {
		return nil, err
	}

	items, total, err := c.storage.Categories(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}

	return newPage(items, req, total), nil
}

func (c *categories) All(ctx context.Context, withArticlesOnly bool) ([]domain.Category, error) {
	items, err := c.storage.AllCategories(ctx, withArticlesOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}

	return items, nil
}
