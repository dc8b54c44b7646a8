package postgres_test

import (
	"context"
	"myblog/pkg/domain"
	"myblog/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Settings(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	s, err := pg.CreateSetting(ctx, domain.Setting{Key: "site.title", Value: "My Blog", Public: true})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultSettingType, s.Type)

	_, err = pg.CreateSetting(ctx, domain.Setting{Key: "site.title"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	upserted, err := pg.UpsertSetting(ctx, domain.Setting{Key: "site.title", Value: "Renamed", Public: true})
	require.NoError(t, err)
	require.Equal(t, s.ID, upserted.ID)
	require.Equal(t, "Renamed", upserted.Value)

	_, err = pg.UpsertSetting(ctx, domain.Setting{Key: "smtp.password", Value: "secret", Type: "password"})
	require.NoError(t, err)

	public, err := pg.Settings(ctx, storage.SettingFilter{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, public, 1)

	passwords, err := pg.Settings(ctx, storage.SettingFilter{Type: "password"})
	require.NoError(t, err)
	require.Len(t, passwords, 1)
	require.Equal(t, "smtp.password", passwords[0].Key)

	byKey, err := pg.SettingByKey(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, byKey)

	s.Value = "Again"
	updated, err := pg.UpdateSetting(ctx, *s)
	require.NoError(t, err)
	require.Equal(t, "Again", updated.Value)

	deleted, err := pg.DeleteSetting(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, deleted)
}

func TestPgSQL_Users(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	u, err := pg.UpsertUser(ctx, domain.User{Username: "admin", PasswordHash: "h1", Enabled: true})
	require.NoError(t, err)
	require.Nil(t, u.LastLoginAt)

	again, err := pg.UpsertUser(ctx, domain.User{Username: "admin", PasswordHash: "h2", Enabled: true})
	require.NoError(t, err)
	require.Equal(t, u.ID, again.ID)
	require.Equal(t, "h2", again.PasswordHash)

	require.NoError(t, pg.TouchUserLogin(ctx, u.ID))

	got, err := pg.UserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)

	missing, err := pg.UserByUsername(ctx, "ghost")
	require.NoError(t, err)
	require.Nil(t, missing)

	pingErr := pg.Ping(ctx)
	require.NoError(t, pingErr)
}
