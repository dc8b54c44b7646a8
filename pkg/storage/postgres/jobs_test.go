package postgres_test

import (
	"context"
	"database/sql"
	"myblog/internal/blog"
	"myblog/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	require.NoError(t, err)
}

func TestPgSQL_AddJob_WithinTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, blog.LinkPreviewArgs{FriendLinkID: 1}, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	job := rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&blog.LinkPreviewArgs{},
		&rivertest.RequireInsertedOpts{MaxAttempts: 1},
	)
	require.EqualValues(t, 1, job.Args.FriendLinkID)
}

func TestPgSQL_AddJob_OutsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, blog.LinkPreviewArgs{FriendLinkID: 2}, &river.InsertOpts{Queue: river.QueueDefault})
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&blog.LinkPreviewArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_UniquePerFriendLink(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, blog.LinkPreviewArgs{FriendLinkID: 3}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, blog.LinkPreviewArgs{FriendLinkID: 3}, nil)
	require.NoError(t, err)
	require.False(t, inserted, "second preview job for the same link is skipped")

	inserted, err = pg.AddJob(ctx, blog.LinkPreviewArgs{FriendLinkID: 4}, nil)
	require.NoError(t, err)
	require.True(t, inserted)
}
