// Package v1handler implements the v1 REST API of the blog.
package v1handler

import (
	"context"
	"encoding/json"
	"myblog/internal/auth"
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"myblog/pkg/logger"
	"myblog/pkg/serrors"
	"myblog/pkg/urlmeta"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Response is the envelope of every API response.
type Response struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorResponse is an error rendered for the client.
type ErrorResponse struct {
	StatusCode int
	Response   Response
}

// Deps are the services behind the API.
type Deps struct {
	Auth        auth.Authenticator
	Resolver    urlmeta.Resolver
	Categories  blog.Categories
	Tags        blog.Tags
	Articles    blog.Articles
	Comments    blog.Messages
	Guestbook   blog.Messages
	FriendLinks blog.FriendLinks
	Settings    blog.Settings
}

// Handler routes v1 requests. Paths include the /v1 prefix.
type Handler struct {
	deps Deps
	sec  *SecHandler
	mux  *http.ServeMux
}

// Ensure Handler can be mounted on a mux.
var _ http.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	h := &Handler{
		deps: deps,
		sec:  NewSecHandler(deps.Auth),
		mux:  http.NewServeMux(),
	}
	h.routes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.authRoutes()
	h.metadataRoutes()
	h.categoryRoutes()
	h.tagRoutes()
	h.articleRoutes()
	h.messageRoutes("/v1/comments", domain.BoardComments)
	h.messageRoutes("/v1/guestbook", domain.BoardGuestbook)
	h.friendLinkRoutes()
	h.settingRoutes()
}

// endpoint answers a request with its data or its error.
type endpoint func(r *http.Request) (any, error)

func (h *Handler) public(pattern string, fn endpoint) {
	h.mux.Handle(pattern, h.serve(fn))
}

func (h *Handler) admin(pattern string, fn endpoint) {
	h.mux.Handle(pattern, h.sec.Middleware(h.serve(fn)))
}

func (h *Handler) serve(fn endpoint) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			fail(w, r, err)

			return
		}

		writeJSON(w, http.StatusOK, Response{
			Code:      http.StatusOK,
			Message:   "success",
			Data:      data,
			Timestamp: time.Now().UnixMilli(),
		})
	})
}

// NewError renders err for the client. Details of internal errors are logged
// and never returned.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorResponse {
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response: Response{
			Code:      status,
			Message:   serrors.PublicMessage(err),
			Timestamp: time.Now().UnixMilli(),
		},
	}
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
