package auth

import (
	"context"
	"fmt"
	"myblog/pkg/logger"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

// TokenType is the scheme clients put in front of the token.
const TokenType = "Bearer"

// Service is the storage backed Authenticator.
type Service struct {
	storage storage.Storage
	tokens  *Tokens
}

// Ensure Service conforms to the Authenticator interface.
var _ Authenticator = (*Service)(nil)

// New creates a Service that looks users up in storage and signs with tokens.
func New(storage storage.Storage, tokens *Tokens) *Service {
	return &Service{storage: storage, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "username and password are required")
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	// same answer for unknown users and wrong passwords
	if user == nil || !passwordMatches(user.PasswordHash, password) {
		logger.Warn(ctx, "failed login", zap.String("username", username))

		return nil, serrors.With(serrors.ErrUnauthorized, "invalid username or password")
	}
	if !user.Enabled {
		return nil, serrors.With(serrors.ErrUnauthorized, "account is disabled")
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}
	if err := s.storage.TouchUserLogin(ctx, user.ID); err != nil {
		// the token is valid either way
		logger.Warn(ctx, "could not record login", zap.Int64("userID", user.ID), zap.Error(err))
	}

	logger.Info(ctx, "admin logged in", zap.String("username", user.Username))

	return &Session{
		Token:     token,
		TokenType: TokenType,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		User:      user,
	}, nil
}

func (s *Service) Verify(_ context.Context, token string) (string, error) {
	username, err := s.tokens.Parse(token)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid or expired token")
	}

	return username, nil
}
