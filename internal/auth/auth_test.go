package auth_test

import (
	"context"
	"errors"
	"myblog/internal/auth"
	"myblog/pkg/domain"
	"myblog/pkg/logger"
	"myblog/pkg/serrors"
	"testing"
	"time"

	mockstorage "myblog/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secret = "test-secret"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newService(t *testing.T) (*auth.Service, *mockstorage.MockStorage, *auth.Tokens) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tokens, err := auth.NewTokens(secret, "myblog", time.Hour)
	require.NoError(t, err)

	return auth.New(st, tokens), st, tokens
}

func adminUser(t *testing.T, enabled bool) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	return &domain.User{ID: 1, Username: "admin", PasswordHash: hash, Enabled: enabled}
}

func TestLogin_Success(t *testing.T) {
	svc, st, tokens := newService(t)
	ctx := context.Background()

	st.EXPECT().UserByUsername(gomock.Any(), "admin").Return(adminUser(t, true), nil)
	st.EXPECT().TouchUserLogin(gomock.Any(), int64(1)).Return(nil)

	session, err := svc.Login(ctx, " admin ", "s3cret")
	require.NoError(t, err)
	require.Equal(t, auth.TokenType, session.TokenType)
	require.EqualValues(t, 3600, session.ExpiresIn)
	require.Equal(t, "admin", session.User.Username)

	subject, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	require.Equal(t, "admin", subject)

	username, err := svc.Verify(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, "admin", username)
}

func TestLogin_TouchFailureStillLogsIn(t *testing.T) {
	svc, st, _ := newService(t)

	st.EXPECT().UserByUsername(gomock.Any(), "admin").Return(adminUser(t, true), nil)
	st.EXPECT().TouchUserLogin(gomock.Any(), int64(1)).Return(errors.New("db down"))

	_, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
}

func TestLogin_Rejected(t *testing.T) {
	svc, st, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "x")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, err = svc.Login(ctx, "ghost", "s3cret")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().UserByUsername(gomock.Any(), "admin").Return(adminUser(t, true), nil)
	_, err = svc.Login(ctx, "admin", "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.Equal(t, "invalid username or password", serrors.PublicMessage(err))

	st.EXPECT().UserByUsername(gomock.Any(), "admin").Return(adminUser(t, false), nil)
	_, err = svc.Login(ctx, "admin", "s3cret")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.Equal(t, "account is disabled", serrors.PublicMessage(err))
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestVerify_RejectsBadTokens(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Issuer:    "myblog",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	otherIssuer := valid
	otherIssuer.Issuer = "someone-else"
	noExpiry := valid
	noExpiry.ExpiresAt = nil
	noSubject := valid
	noSubject.Subject = ""

	cases := map[string]string{
		"garbage":      "not-a-token",
		"expired":      sign(t, jwt.SigningMethodHS512, []byte(secret), expired),
		"other key":    sign(t, jwt.SigningMethodHS512, []byte("other"), valid),
		"other alg":    sign(t, jwt.SigningMethodHS256, []byte(secret), valid),
		"other issuer": sign(t, jwt.SigningMethodHS512, []byte(secret), otherIssuer),
		"no expiry":    sign(t, jwt.SigningMethodHS512, []byte(secret), noExpiry),
		"no subject":   sign(t, jwt.SigningMethodHS512, []byte(secret), noSubject),
	}
	for name, token := range cases {
		_, err := svc.Verify(ctx, token)
		require.ErrorIs(t, err, serrors.ErrUnauthorized, name)
		require.ErrorIs(t, err, auth.ErrInvalidToken, name)
	}

	username, err := svc.Verify(ctx, sign(t, jwt.SigningMethodHS512, []byte(secret), valid))
	require.NoError(t, err)
	require.Equal(t, "admin", username)
}

func TestNewTokens_Validation(t *testing.T) {
	_, err := auth.NewTokens("", "myblog", time.Hour)
	require.Error(t, err)
	_, err = auth.NewTokens("x", "myblog", 0)
	require.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	_, err := auth.HashPassword("")
	require.Error(t, err)

	a, err := auth.HashPassword("pw")
	require.NoError(t, err)
	b, err := auth.HashPassword("pw")
	require.NoError(t, err)
	require.NotEqual(t, a, b, "hashes are salted")
}
