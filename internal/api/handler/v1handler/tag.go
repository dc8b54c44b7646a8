package v1handler

import (
	"myblog/internal/blog"
	"net/http"
)

func (h *Handler) tagRoutes() {
	h.admin("POST /v1/tags", h.createTag)
	h.admin("PUT /v1/tags/{id}", h.updateTag)
	h.admin("DELETE /v1/tags/{id}", h.deleteTag)
	h.public("GET /v1/tags/{id}", h.getTag)
	h.public("GET /v1/tags/slug/{slug}", func(r *http.Request) (any, error) {
		return h.deps.Tags.BySlug(r.Context(), r.PathValue("slug")) //nolint: wrapcheck
	})
	h.public("GET /v1/tags", h.listTags)
	h.public("GET /v1/tags/all", func(r *http.Request) (any, error) {
		return h.deps.Tags.All(r.Context(), false) //nolint: wrapcheck
	})
	h.public("GET /v1/tags/with-articles", func(r *http.Request) (any, error) {
		return h.deps.Tags.All(r.Context(), true) //nolint: wrapcheck
	})
	h.public("GET /v1/tags/popular", h.popularTags)
}

func (h *Handler) createTag(r *http.Request) (any, error) {
	var in blog.TagInput
	if err := decode(r, &in); err != nil {
		return nil, err
	}

	return h.deps.Tags.Create(r.Context(), in) //nolint: wrapcheck
}

func (h *Handler) updateTag(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}
	var in blog.TagInput
	if err := decode(r, &in); err != nil {
		return nil, err
	}

	return h.deps.Tags.Update(r.Context(), id, in) //nolint: wrapcheck
}

func (h *Handler) deleteTag(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	return nil, h.deps.Tags.Delete(r.Context(), id) //nolint: wrapcheck
}

func (h *Handler) getTag(r *http.Request) (any, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	return h.deps.Tags.ByID(r.Context(), id) //nolint: wrapcheck
}

func (h *Handler) listTags(r *http.Request) (any, error) {
	q, err := pageQuery(r)
	if err != nil {
		return nil, err
	}

	return h.deps.Tags.List(r.Context(), q) //nolint: wrapcheck
}

func (h *Handler) popularTags(r *http.Request) (any, error) {
	limit, err := queryInt(r, "limit", blog.DefaultPopularTags)
	if err != nil {
		return nil, err
	}

	return h.deps.Tags.Popular(r.Context(), limit) //nolint: wrapcheck
}
