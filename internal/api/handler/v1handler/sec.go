package v1handler

import (
	"context"
	"myblog/internal/auth"
	"myblog/pkg/logger"
	"myblog/pkg/serrors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey string

// UsernameKey holds the authenticated admin in the request context.
const UsernameKey contextKey = "username"

// Username returns the authenticated admin stored in ctx.
func Username(ctx context.Context) string {
	name, _ := ctx.Value(UsernameKey).(string)

	return name
}

// SecHandler guards admin endpoints with bearer tokens.
type SecHandler struct {
	auth auth.Authenticator
}

func NewSecHandler(authenticator auth.Authenticator) *SecHandler {
	return &SecHandler{auth: authenticator}
}

// HandleBearerAuth verifies token and returns ctx carrying its username.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if token == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	username, err := s.auth.Verify(ctx, token)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	ctx = context.WithValue(ctx, UsernameKey, username)

	return logger.WithFields(ctx, zap.String("username", username)), nil
}

// Middleware rejects requests to next without a valid bearer token.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := s.HandleBearerAuth(r.Context(), bearerToken(r))
		if err != nil {
			if serrors.KindOf(err) == nil {
				err = serrors.Wrap(serrors.ErrUnauthorized, err, "invalid or expired token")
			}
			fail(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, auth.TokenType) {
		return ""
	}

	return strings.TrimSpace(token)
}
