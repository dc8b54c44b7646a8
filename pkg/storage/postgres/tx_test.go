package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"myblog/pkg/domain"
	"myblog/pkg/storage"
	"myblog/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_NestedIsRejected(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitAndRollback_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	created, err := txStorage.CreateCategory(ctx, domain.Category{Name: "Notes", Slug: "notes"})
	require.NoError(t, err)

	// not visible before commit
	outside, err := pg.CategoryByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, outside)

	require.NoError(t, txStorage.Commit())

	outside, err = pg.CategoryByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, outside)
	require.Equal(t, "notes", outside.Slug)
}

func TestPgSQL_Rollback_DiscardsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	created, err := txStorage.CreateTag(ctx, domain.Tag{Name: "draft", Slug: "draft"})
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	tag, err := pg.TagByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, tag)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.CreateSetting(ctx, domain.Setting{Key: "site.title", Value: "My Blog", Type: "string", Public: true})

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)
	saved, err := pg.SettingByKey(ctx, "site.title")
	require.NoError(t, err)
	require.NotNil(t, saved)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.CreateSetting(ctx, domain.Setting{Key: "site.footer", Value: "bye", Type: "string"}); err != nil {
			return err //nolint: wrapcheck
		}

		return boom
	})
	require.ErrorIs(t, err, boom)
	discarded, err := pg.SettingByKey(ctx, "site.footer")
	require.NoError(t, err)
	require.Nil(t, discarded)
}
