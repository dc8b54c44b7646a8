package storage

import (
	"context"
	"myblog/pkg/domain"
)

// UserStorage persists admin accounts. Lookups return nil when nothing matches.
type UserStorage interface {
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpsertUser creates the user or updates the password hash and profile of
	// the existing user with the same username.
	UpsertUser(ctx context.Context, u domain.User) (*domain.User, error)
	TouchUserLogin(ctx context.Context, id int64) error
}
