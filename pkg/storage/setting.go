package storage

import (
	"context"
	"myblog/pkg/domain"
)

// SettingFilter narrows setting list queries. Zero values disable a filter.
type SettingFilter struct {
	PublicOnly bool
	Type       string
}

// SettingStorage persists system settings. Keys are unique. Lookups return
// nil when nothing matches.
type SettingStorage interface {
	CreateSetting(ctx context.Context, s domain.Setting) (*domain.Setting, error)
	UpdateSetting(ctx context.Context, s domain.Setting) (*domain.Setting, error)
	DeleteSetting(ctx context.Context, id int64) (bool, error)
	SettingByID(ctx context.Context, id int64) (*domain.Setting, error)
	SettingByKey(ctx context.Context, key string) (*domain.Setting, error)
	Settings(ctx context.Context, filter SettingFilter) ([]domain.Setting, error)
	// UpsertSetting inserts s or updates the existing setting with the same key.
	UpsertSetting(ctx context.Context, s domain.Setting) (*domain.Setting, error)
}
