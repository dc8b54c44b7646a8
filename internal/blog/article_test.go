package blog_test

import (
	"context"
	"fmt"
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArticles_Create(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewArticles(st)

	st.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a domain.Article) (*domain.Article, error) {
			require.Equal(t, "Why Go", a.Title)
			require.Equal(t, "why-go", a.Slug)
			require.Nil(t, a.CategoryID, "non-positive category ids are dropped")
			require.Equal(t, []int64{1, 2}, a.TagIDs)
			require.True(t, a.Published)
			a.ID = 9

			return &a, nil
		})

	got, err := svc.Create(context.Background(), blog.ArticleInput{
		Title:      "  Why Go ",
		Content:    "because",
		Published:  true,
		CategoryID: ptr(int64(0)),
		TagIDs:     []int64{1, 2},
	})
	require.NoError(t, err)
	require.EqualValues(t, 9, got.ID)
}

func TestArticles_Create_Invalid(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewArticles(st)

	_, err := svc.Create(context.Background(), blog.ArticleInput{Title: "t"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "content is required", serrors.PublicMessage(err))

	_, err = svc.Create(context.Background(), blog.ArticleInput{Title: "t", Content: "c", CoverImage: "not a url"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "coverImage must be a valid URL", serrors.PublicMessage(err))
}

func TestArticles_Create_UnknownCategory(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewArticles(st)

	st.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not insert: %w", storage.ErrReferenceNotFound))

	_, err := svc.Create(context.Background(), blog.ArticleInput{Title: "t", Content: "c", CategoryID: ptr(int64(99))})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestArticles_List_TrimsQuery(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewArticles(st)

	want := storage.ArticleFilter{PublishedOnly: true, Query: "goroutines"}
	st.EXPECT().Articles(gomock.Any(), want, storage.PageRequest{Size: 5, SortBy: "viewCount", Desc: true}).
		Return([]domain.Article{{ID: 1}}, int64(1), nil)

	page, err := svc.List(context.Background(),
		storage.ArticleFilter{PublishedOnly: true, Query: "  goroutines "},
		blog.PageQuery{Size: 5, SortBy: "viewCount"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.True(t, page.Last)
}

func TestArticles_CountAndFlags(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewArticles(st)
	ctx := context.Background()

	st.EXPECT().IncrementArticleCounter(gomock.Any(), int64(1), storage.ArticleViews).Return(true, nil)
	require.NoError(t, svc.Count(ctx, 1, storage.ArticleViews))

	st.EXPECT().IncrementArticleCounter(gomock.Any(), int64(2), storage.ArticleLikes).Return(false, nil)
	require.ErrorIs(t, svc.Count(ctx, 2, storage.ArticleLikes), serrors.ErrNotFound)

	flags := storage.ArticleFlags{Published: ptr(true)}
	st.EXPECT().SetArticleFlags(gomock.Any(), int64(1), flags).Return(&domain.Article{ID: 1, Published: true}, nil)
	got, err := svc.SetFlags(ctx, 1, flags)
	require.NoError(t, err)
	require.True(t, got.Published)

	st.EXPECT().SetArticleFlags(gomock.Any(), int64(3), flags).Return(nil, nil)
	_, err = svc.SetFlags(ctx, 3, flags)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
