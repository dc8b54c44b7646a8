package v1handler

import (
	"myblog/internal/blog"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"net/http"
	"strings"
)

func (h *Handler) articleRoutes() {
	h.admin("POST /v1/articles", h.createArticle)
	h.admin("PUT /v1/articles/{id}", h.updateArticle)
	h.admin("DELETE /v1/articles/{id}", h.deleteArticle)
	h.public("GET /v1/articles/{id}", h.getArticle)
	h.public("GET /v1/articles/slug/{slug}", func(r *http.Request) (any, error) {
		return h.deps.Articles.BySlug(r.Context(), r.PathValue("slug")) //nolint: wrapcheck
	})

	// admin sees drafts too
	h.admin("GET /v1/articles", h.listArticles(func(r *http.Request) (storage.ArticleFilter, error) {
		return storage.ArticleFilter{Query: r.URL.Query().Get("keyword")}, nil
	}))
	h.public("GET /v1/articles/published", h.listArticles(func(*http.Request) (storage.ArticleFilter, error) {
		return storage.ArticleFilter{PublishedOnly: true}, nil
	}))
	h.public("GET /v1/articles/pinned", h.listArticles(func(*http.Request) (storage.ArticleFilter, error) {
		return storage.ArticleFilter{PublishedOnly: true, PinnedOnly: true}, nil
	}))
	h.public("GET /v1/articles/popular", h.popularArticles)
	h.public("GET /v1/articles/search", h.listArticles(func(r *http.Request) (storage.ArticleFilter, error) {
		keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
		if keyword == "" {
			return storage.ArticleFilter{}, serrors.With(serrors.ErrBadRequest, "keyword is required")
		}

		return storage.ArticleFilter{PublishedOnly: true, Query: keyword}, nil
	}))
	h.public("GET /v1/articles/category/{categoryId}", h.listArticles(func(r *http.Request) (storage.ArticleFilter, error) {
		id, err := pathID(r, "categoryId")

		return storage.ArticleFilter{PublishedOnly: true, CategoryID: id}, err
	}))
	h.public("GET /v1/articles/tag/{tagId}", h.listArticles(func(r *http.Request) (storage.ArticleFilter, error) {
		id, err := pathID(r, "tagId")

		return storage.ArticleFilter{PublishedOnly: true, TagID: id}, err
	}))

	h.public("POST /v1/articles/{id}/view", h.countArticle(storage.ArticleViews))
	h.public("POST /v1/articles/{id}/like", h.countArticle(storage.ArticleLikes))
	h.admin("POST /v1/articles/{id}/publish", h.flagArticle(storage.ArticleFlags{Published: ptr(true)}))
	h.admin("POST /v1/articles/{id}/unpublish", h.flagArticle(storage.ArticleFlags{Published: ptr(false)}))
	h.admin("POST /v1/articles/{id}/pin", h.flagArticle(storage.ArticleFlags{Pinned: ptr(true)}))
	h.admin("POST /v1/articles/{id}/unpin", h.flagArticle(storage.ArticleFlags{Pinned: ptr(false)}))
}

func (h *Handler) createArticle(r *http.Request) (any, error) {
	var in blog.ArticleInput
	if err := decode(r, &in); err != nil {
		return nil, err
	}

	return h.deps.Articles.Create(r.Context(), in) //nolint: wrapcheck
}

func (h *Handler) updateArticle(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}
	var in blog.ArticleInput
	if err := decode(r, &in); err != nil {
		return nil, err
	}

	return h.deps.Articles.Update(r.Context(), id, in) //nolint: wrapcheck
}

func (h *Handler) deleteArticle(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	return nil, h.deps.Articles.Delete(r.Context(), id) //nolint: wrapcheck
}

func (h *Handler) getArticle(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	return h.deps.Articles.ByID(r.Context(), id) //nolint: wrapcheck
}

func (h *Handler) listArticles(filter func(r *http.Request) (storage.ArticleFilter, error)) endpoint {
	return func(r *http.Request) (any, error) {
		f, err := filter(r)
		if err != nil {
			return nil, err
		}
		q, err := pageQuery(r)
		if err != nil {
			return nil, err
		}

		return h.deps.Articles.List(r.Context(), f, q) //nolint: wrapcheck
	}
}

func (h *Handler) popularArticles(r *http.Request) (any, error) {
	q, err := pageQuery(r)
	if err != nil {
		return nil, err
	}
	q.SortBy, q.SortDir = "viewCount", "desc"

	return h.deps.Articles.List(r.Context(), storage.ArticleFilter{PublishedOnly: true}, q) //nolint: wrapcheck
}

func (h *Handler) countArticle(counter storage.ArticleCounter) endpoint {
	return func(r *http.Request) (any, error) {
		id, err := pathID(r, "id")
		if err != nil {
			return nil, err
		}

		return nil, h.deps.Articles.Count(r.Context(), id, counter) //nolint: wrapcheck
	}
}

func (h *Handler) flagArticle(flags storage.ArticleFlags) endpoint {
	return func(r *http.Request) (any, error) {
		id, err := pathID(r, "id")
		if err != nil {
			return nil, err
		}

		return h.deps.Articles.SetFlags(r.Context(), id, flags) //nolint: wrapcheck
	}
}
