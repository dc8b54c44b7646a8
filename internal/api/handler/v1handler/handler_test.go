package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"myblog/internal/api/handler/v1handler"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"myblog/pkg/logger"
	"myblog/pkg/serrors"

	mockauth "myblog/internal/auth/mock"
	mockblog "myblog/internal/blog/mock"
	mockurlmeta "myblog/pkg/urlmeta/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminToken = "admin-token"

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type mocks struct {
	auth        *mockauth.MockAuthenticator
	resolver    *mockurlmeta.MockResolver
	categories  *mockblog.MockCategories
	tags        *mockblog.MockTags
	articles    *mockblog.MockArticles
	comments    *mockblog.MockMessages
	guestbook   *mockblog.MockMessages
	friendLinks *mockblog.MockFriendLinks
	settings    *mockblog.MockSettings
}

func newHandler(t *testing.T) (*v1handler.Handler, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocks{
		auth:        mockauth.NewMockAuthenticator(ctrl),
		resolver:    mockurlmeta.NewMockResolver(ctrl),
		categories:  mockblog.NewMockCategories(ctrl),
		tags:        mockblog.NewMockTags(ctrl),
		articles:    mockblog.NewMockArticles(ctrl),
		comments:    mockblog.NewMockMessages(ctrl),
		guestbook:   mockblog.NewMockMessages(ctrl),
		friendLinks: mockblog.NewMockFriendLinks(ctrl),
		settings:    mockblog.NewMockSettings(ctrl),
	}
	m.auth.EXPECT().Verify(gomock.Any(), adminToken).Return("admin", nil).AnyTimes()

	return v1handler.New(v1handler.Deps{
		Auth:        m.auth,
		Resolver:    m.resolver,
		Categories:  m.categories,
		Tags:        m.tags,
		Articles:    m.articles,
		Comments:    m.comments,
		Guestbook:   m.guestbook,
		FriendLinks: m.friendLinks,
		Settings:    m.settings,
	}), m
}

type envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// do sends a request through h. A non-empty token is sent as bearer token.
func do(t *testing.T, h http.Handler, method, target, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())

	return rec, env
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, 500, res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
	require.Nil(t, res.Response.Data)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, 404, res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "name is required")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "name is required", res.Response.Message)
}

func TestNewError_SemanticWrap_Conflict(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("duplicate key value violates unique constraint")
	err := serrors.Wrap(serrors.ErrConflict, cause, "tag already exists")
	res := h.NewError(ctx, err)
	require.Equal(t, 409, res.StatusCode)
	// Should include provided message, not the cause
	require.Equal(t, "tag already exists", res.Response.Message)
}

func TestHandler_UnknownRoute(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/nope", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
