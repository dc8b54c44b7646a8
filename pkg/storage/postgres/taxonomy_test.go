package postgres_test

import (
	"context"
	"myblog/pkg/domain"
	"myblog/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Categories_CRUD(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	created, err := pg.CreateCategory(ctx, domain.Category{Name: "Go", Slug: "go", Color: "#00ADD8"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "go", created.Slug)
	require.False(t, created.CreatedAt.IsZero())

	_, err = pg.CreateCategory(ctx, domain.Category{Name: "Go", Slug: "golang"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	bySlug, err := pg.CategoryBySlug(ctx, "go")
	require.NoError(t, err)
	require.Equal(t, created.ID, bySlug.ID)

	missing, err := pg.CategoryByID(ctx, created.ID+100)
	require.NoError(t, err)
	require.Nil(t, missing)

	created.Description = "The Go language"
	updated, err := pg.UpdateCategory(ctx, *created)
	require.NoError(t, err)
	require.Equal(t, "The Go language", updated.Description)

	none, err := pg.UpdateCategory(ctx, domain.Category{ID: created.ID + 100, Name: "x", Slug: "x"})
	require.NoError(t, err)
	require.Nil(t, none)

	_, err = pg.CreateCategory(ctx, domain.Category{Name: "Rust", Slug: "rust"})
	require.NoError(t, err)

	page, total, err := pg.Categories(ctx, storage.PageRequest{Page: 0, Size: 1, SortBy: "name"})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, page, 1)
	require.Equal(t, "Go", page[0].Name)

	all, err := pg.AllCategories(ctx, true)
	require.NoError(t, err)
	require.Empty(t, all)

	deleted, err := pg.DeleteCategory(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pg.DeleteCategory(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestPgSQL_Tags_PopularFollowArticles(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	goTag, err := pg.CreateTag(ctx, domain.Tag{Name: "go", Slug: "go"})
	require.NoError(t, err)
	dbTag, err := pg.CreateTag(ctx, domain.Tag{Name: "db", Slug: "db"})
	require.NoError(t, err)
	_, err = pg.CreateTag(ctx, domain.Tag{Name: "unused", Slug: "unused"})
	require.NoError(t, err)

	for i, slug := range []string{"a", "b"} {
		tagIDs := []int64{goTag.ID}
		if i == 0 {
			tagIDs = append(tagIDs, dbTag.ID)
		}
		_, err := pg.CreateArticle(ctx, domain.Article{Title: slug, Content: "c", Slug: slug, TagIDs: tagIDs})
		require.NoError(t, err)
	}

	popular, err := pg.PopularTags(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	require.Equal(t, "go", popular[0].Name)
	require.EqualValues(t, 2, popular[0].ArticleCount)
	require.EqualValues(t, 1, popular[1].ArticleCount)

	withArticles, err := pg.AllTags(ctx, true)
	require.NoError(t, err)
	require.Len(t, withArticles, 2)

	all, _, err := pg.Tags(ctx, storage.PageRequest{Size: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
}
