package v1handler

import (
	"myblog/internal/blog"
	"net/http"
)

func (h *Handler) categoryRoutes() {
	h.admin("POST /v1/categories", h.createCategory)
	h.admin("PUT /v1/categories/{id}", h.updateCategory)
	h.admin("DELETE /v1/categories/{id}", h.deleteCategory)
	h.public("GET /v1/categories/{id}", h.getCategory)
	h.public("GET /v1/categories/slug/{slug}", func(r *http.Request) (any, error) {
		return h.deps.Categories.BySlug(r.Context(), r.PathValue("slug")) //nolint: wrapcheck
	})
	h.public("GET /v1/categories", h.listCategories)
	h.public("GET /v1/categories/all", func(r *http.Request) (any, error) {
		return h.deps.Categories.All(r.Context(), false) //nolint: wrapcheck
	})
	h.public("GET /v1/categories/with-articles", func(r *http.Request) (any, error) {
		return h.deps.Categories.All(r.Context(), true) //nolint: wrapcheck
	})
}

func (h *Handler) createCategory(r *http.Request) (any, error) {
	var in blog.CategoryInput
	if err := decode(r, &in); err != nil {
		return nil, err
	}

	return h.deps.Categories.Create(r.Context(), in) //nolint: wrapcheck
}

func (h *Handler) updateCategory(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}
	var in blog.CategoryInput
	if err := decode(r, &in); err != nil {
		return nil, err
	}

	return h.deps.Categories.Update(r.Context(), id, in) //nolint: wrapcheck
}

func (h *Handler) deleteCategory(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	return nil, h.deps.Categories.Delete(r.Context(), id) //nolint: wrapcheck
}

func (h *Handler) getCategory(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	return h.deps.Categories.ByID(r.Context(), id) //nolint: wrapcheck
}

func (h *Handler) listCategories(r *http.Request) (any, error) {
	q, err := pageQuery(r)
	if err != nil {
		return nil, err
	}

	return h.deps.Categories.List(r.Context(), q) //nolint: wrapcheck
}
