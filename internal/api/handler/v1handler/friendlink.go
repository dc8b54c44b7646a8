package v1handler

import (
	"myblog/internal/blog"
	"net/http"
)

func (h *Handler) friendLinkRoutes() {
	h.public("POST /v1/friend-links", func(r *http.Request) (any, error) {
		var in blog.FriendLinkInput
		if err := decode(r, &in); err != nil {
			return nil, err
		}

		return h.deps.FriendLinks.Apply(r.Context(), in) //nolint: wrapcheck
	})
	h.admin("PUT /v1/friend-links/{id}", h.withID(func(r *http.Request, id int64) (any, error) {
		var in blog.FriendLinkInput
		if err := decode(r, &in); err != nil {
			return nil, err
		}

		return h.deps.FriendLinks.Update(r.Context(), id, in) //nolint: wrapcheck
	}))
	h.admin("DELETE /v1/friend-links/{id}", h.withID(func(r *http.Request, id int64) (any, error) {
		return nil, h.deps.FriendLinks.Delete(r.Context(), id) //nolint: wrapcheck
	}))
	h.public("GET /v1/friend-links/{id}", h.withID(func(r *http.Request, id int64) (any, error) {
		return h.deps.FriendLinks.ByID(r.Context(), id) //nolint: wrapcheck
	}))
	h.admin("GET /v1/friend-links", h.listFriendLinks(nil))
	h.admin("GET /v1/friend-links/pending", h.listFriendLinks(ptr(false)))
	h.public("GET /v1/friend-links/approved", func(r *http.Request) (any, error) {
		return h.deps.FriendLinks.Approved(r.Context()) //nolint: wrapcheck
	})
	h.admin("POST /v1/friend-links/{id}/approve", h.withID(func(r *http.Request, id int64) (any, error) {
		return h.deps.FriendLinks.SetApproved(r.Context(), id, true) //nolint: wrapcheck
	}))
	h.admin("POST /v1/friend-links/{id}/reject", h.withID(func(r *http.Request, id int64) (any, error) {
		return h.deps.FriendLinks.SetApproved(r.Context(), id, false) //nolint: wrapcheck
	}))
	h.public("POST /v1/friend-links/{id}/click", h.withID(func(r *http.Request, id int64) (any, error) {
		return nil, h.deps.FriendLinks.Click(r.Context(), id) //nolint: wrapcheck
	}))
}

func (h *Handler) listFriendLinks(approved *bool) endpoint {
	return func(r *http.Request) (any, error) {
		q, err := pageQuery(r)
		if err != nil {
			return nil, err
		}

		return h.deps.FriendLinks.List(r.Context(), approved, q) //nolint: wrapcheck
	}
}
