// Package auth authenticates administrators and issues the bearer tokens that
// guard the admin API.
package auth

import (
	"context"
	"myblog/pkg/domain"
)

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *

// Session is the result of a successful login.
type Session struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresIn int64        `json:"expiresIn"`
	User      *domain.User `json:"user"`
}

// Authenticator logs administrators in and verifies their tokens.
type Authenticator interface {
	// Login checks the credentials and returns a fresh token.
	Login(ctx context.Context, username, password string) (*Session, error)
	// Verify validates token and returns the username it was issued to.
	Verify(ctx context.Context, token string) (string, error)
}
