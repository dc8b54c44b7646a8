package v1handler_test

import (
	"context"
	"myblog/internal/api/handler/v1handler"
	"myblog/internal/auth"
	"myblog/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockstorage "myblog/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSecHandlerForTest(t *testing.T) (*v1handler.SecHandler, *auth.Tokens) {
	t.Helper()
	tokens, err := auth.NewTokens("secret", "myblog", time.Hour)
	require.NoError(t, err)
	svc := auth.New(mockstorage.NewMockStorage(gomock.NewController(t)), tokens)

	return v1handler.NewSecHandler(svc), tokens
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	sh, tokens := newSecHandlerForTest(t)
	tkn, err := tokens.Issue("admin")
	require.NoError(t, err)

	ctx, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.NoError(t, err)
	require.Equal(t, "admin", v1handler.Username(ctx))
}

func TestHandleBearerAuth_Missing(t *testing.T) {
	sh, _ := newSecHandlerForTest(t)

	_, err := sh.HandleBearerAuth(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_ForeignToken(t *testing.T) {
	sh, _ := newSecHandlerForTest(t)
	other, err := auth.NewTokens("other-secret", "myblog", time.Hour)
	require.NoError(t, err)
	tkn, err := other.Issue("admin")
	require.NoError(t, err)

	_, err = sh.HandleBearerAuth(context.Background(), tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAdminRoutes_RequireBearer(t *testing.T) {
	h, _ := newHandler(t)

	rec, env := do(t, h, http.MethodDelete, "/v1/categories/1", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, http.StatusUnauthorized, env.Code)

	rec, _ = do(t, h, http.MethodGet, "/v1/system-settings", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_RejectsWrongScheme(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/system-settings", nil)
	req.Header.Set("Authorization", "Basic "+adminToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
