package blog

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"strings"
)

type articles struct {
	storage storage.Storage
}

// NewArticles creates an Articles service backed by storage.
func NewArticles(storage storage.Storage) Articles {
	return &articles{storage: storage}
}

func (a *articles) normalize(in ArticleInput) (domain.Article, error) {
	if err := check(in); err != nil {
		return domain.Article{}, err
	}
	slug := slugOr(in.Slug, in.Title)
	if slug == "" {
		return domain.Article{}, serrors.With(serrors.ErrBadRequest, "slug is required")
	}
	if in.CategoryID != nil && *in.CategoryID <= 0 {
		in.CategoryID = nil
	}

	return domain.Article{
		Title:      strings.TrimSpace(in.Title),
		Summary:    strings.TrimSpace(in.Summary),
		Content:    in.Content,
		Slug:       slug,
		CoverImage: in.CoverImage,
		Published:  in.Published,
		Pinned:     in.Pinned,
		CategoryID: in.CategoryID,
		TagIDs:     in.TagIDs,
	}, nil
}

func (a *articles) Create(ctx context.Context, in ArticleInput) (*domain.Article, error) {
	article, err := a.normalize(in)
	if err != nil {
		return nil, err
	}

	created, err := a.storage.CreateArticle(ctx, article)
	if err != nil {
		return nil, storeErr(err, "create", "article")
	}

	return created, nil
}

func (a *articles) Update(ctx context.Context, id int64, in ArticleInput) (*domain.Article, error) {
	article, err := a.normalize(in)
	if err != nil {
		return nil, err
	}
	article.ID = id

	updated, err := a.storage.UpdateArticle(ctx, article)
	if err != nil {
		return nil, storeErr(err, "update", "article")
	}
	if updated == nil {
		return nil, notFound("article")
	}

	return updated, nil
}

func (a *articles) Delete(ctx context.Context, id int64) error {
	deleted, err := a.storage.DeleteArticle(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete article: %w", err)
	}
	if !deleted {
		return notFound("article")
	}

	return nil
}

func (a *articles) ByID(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := a.storage.ArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get article: %w", err)
	}
	if article == nil {
		return nil, notFound("article")
	}

	return article, nil
}

func (a *articles) BySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := a.storage.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("could not get article: %w", err)
	}
	if article == nil {
		return nil, notFound("article")
	}

	return article, nil
}

func (a *articles) List(
	ctx context.Context,
	filter storage.ArticleFilter,
	q PageQuery,
) (*domain.Page[domain.Article], error) {
	req, err := q.request("title", "publishedAt", "updatedAt", "viewCount", "likeCount", "commentCount")
	if err != nil {
		return nil, err
	}
	filter.Query = strings.TrimSpace(filter.Query)

	items, total, err := a.storage.Articles(ctx, filter, req)
	if err != nil {
		return nil, fmt.Errorf("could not list articles: %w", err)
	}

	return newPage(items, req, total), nil
}

func (a *articles) Count(ctx context.Context, id int64, counter storage.ArticleCounter) error {
	found, err := a.storage.IncrementArticleCounter(ctx, id, counter)
	if err != nil {
		return fmt.Errorf("could not count article %s: %w", counter, err)
	}
	if !found {
		return notFound("article")
	}

	return nil
}

func (a *articles) SetFlags(ctx context.Context, id int64, flags storage.ArticleFlags) (*domain.Article, error) {
	article, err := a.storage.SetArticleFlags(ctx, id, flags)
	if err != nil {
		return nil, fmt.Errorf("could not update article: %w", err)
	}
	if article == nil {
		return nil, notFound("article")
	}

	return article, nil
}
