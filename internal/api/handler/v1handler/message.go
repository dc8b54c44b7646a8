package v1handler

import (
	"myblog/internal/blog"
	"myblog/pkg/controller"
	"myblog/pkg/domain"
	"myblog/pkg/storage"
	"net/http"
)

func (h *Handler) messages(board domain.Board) blog.Messages {
	if board == domain.BoardComments {
		return h.deps.Comments
	}

	return h.deps.Guestbook
}

// messageRoutes serves comments and the guestbook, which differ only in the
// article a comment belongs to.
func (h *Handler) messageRoutes(prefix string, board domain.Board) {
	list := func(filter func(r *http.Request) (storage.MessageFilter, error)) endpoint {
		return func(r *http.Request) (any, error) {
			f, err := filter(r)
			if err != nil {
				return nil, err
			}
			q, err := pageQuery(r)
			if err != nil {
				return nil, err
			}

			return h.messages(board).List(r.Context(), f, q) //nolint: wrapcheck
		}
	}

	h.public("POST "+prefix, func(r *http.Request) (any, error) {
		var in blog.MessageInput
		if err := decode(r, &in); err != nil {
			return nil, err
		}

		return h.messages(board).Post(r.Context(), in, blog.ClientInfo{ //nolint: wrapcheck
			IPAddress: controller.GetClientIP(r),
			UserAgent: r.UserAgent(),
		})
	})
	h.admin("PUT "+prefix+"/{id}", func(r *http.Request) (any, error) {
		id, err := pathID(r, "id")
		if err != nil {
			return nil, err
		}
		var in blog.MessageInput
		if err := decode(r, &in); err != nil {
			return nil, err
		}

		return h.messages(board).Update(r.Context(), id, in) //nolint: wrapcheck
	})
	h.admin("DELETE "+prefix+"/{id}", h.withID(func(r *http.Request, id int64) (any, error) {
		return nil, h.messages(board).Delete(r.Context(), id) //nolint: wrapcheck
	}))
	h.admin("GET "+prefix+"/{id}", h.withID(func(r *http.Request, id int64) (any, error) {
		return h.messages(board).ByID(r.Context(), id) //nolint: wrapcheck
	}))

	h.admin("GET "+prefix, list(func(*http.Request) (storage.MessageFilter, error) {
		return storage.MessageFilter{}, nil
	}))
	h.admin("GET "+prefix+"/pending", list(func(*http.Request) (storage.MessageFilter, error) {
		return storage.MessageFilter{Approved: ptr(false)}, nil
	}))
	h.public("GET "+prefix+"/approved", list(func(*http.Request) (storage.MessageFilter, error) {
		return storage.MessageFilter{Approved: ptr(true), ParentID: ptr(int64(0))}, nil
	}))
	h.public("GET "+prefix+"/replies/{parentId}", list(func(r *http.Request) (storage.MessageFilter, error) {
		id, err := pathID(r, "parentId")

		return storage.MessageFilter{Approved: ptr(true), ParentID: &id}, err
	}))
	if board == domain.BoardComments {
		h.public("GET "+prefix+"/article/{articleId}", list(func(r *http.Request) (storage.MessageFilter, error) {
			id, err := pathID(r, "articleId")

			return storage.MessageFilter{ArticleID: &id, Approved: ptr(true), ParentID: ptr(int64(0))}, err
		}))
	}

	h.admin("POST "+prefix+"/{id}/approve", h.withID(func(r *http.Request, id int64) (any, error) {
		return h.messages(board).SetApproved(r.Context(), id, true) //nolint: wrapcheck
	}))
	h.admin("POST "+prefix+"/{id}/reject", h.withID(func(r *http.Request, id int64) (any, error) {
		return h.messages(board).SetApproved(r.Context(), id, false) //nolint: wrapcheck
	}))
	h.public("POST "+prefix+"/{id}/like", h.withID(func(r *http.Request, id int64) (any, error) {
		return nil, h.messages(board).Like(r.Context(), id) //nolint: wrapcheck
	}))
}

// withID parses the {id} path value before calling fn.
func (h *Handler) withID(fn func(r *http.Request, id int64) (any, error)) endpoint {
	return func(r *http.Request) (any, error) {
		id, err := pathID(r, "id")
		if err != nil {
			return nil, err
		}

		return fn(r, id)
	}
}
