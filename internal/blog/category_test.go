package blog_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategories_Create_DerivesSlug(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewCategories(st)

	st.EXPECT().CreateCategory(gomock.Any(), domain.Category{Name: "Go Tips", Slug: "go-tips", Color: "#00ADD8"}).
		DoAndReturn(func(_ context.Context, c domain.Category) (*domain.Category, error) {
			c.ID = 1

			return &c, nil
		})

	got, err := svc.Create(context.Background(), blog.CategoryInput{Name: "Go Tips", Color: "#00ADD8"})
	require.NoError(t, err)
	require.EqualValues(t, 1, got.ID)
	require.Equal(t, "go-tips", got.Slug)
}

func TestCategories_Create_Validation(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewCategories(st)

	_, err := svc.Create(context.Background(), blog.CategoryInput{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "name is required", serrors.PublicMessage(err))

	_, err = svc.Create(context.Background(), blog.CategoryInput{Name: "x", Color: "#fff"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "color must be a color like #1A2B3C", serrors.PublicMessage(err))

	_, err = svc.Create(context.Background(), blog.CategoryInput{Name: "!!!"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCategories_Create_DuplicateIsConflict(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewCategories(st)

	st.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not store: %w", storage.ErrDuplicate))

	_, err := svc.Create(context.Background(), blog.CategoryInput{Name: "Go"})
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "category already exists", serrors.PublicMessage(err))
}

func TestCategories_NotFound(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewCategories(st)
	ctx := context.Background()

	st.EXPECT().CategoryByID(gomock.Any(), int64(7)).Return(nil, nil)
	_, err := svc.ByID(ctx, 7)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().CategoryBySlug(gomock.Any(), "nope").Return(nil, nil)
	_, err = svc.BySlug(ctx, "nope")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err = svc.Update(ctx, 7, blog.CategoryInput{Name: "Go"})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().DeleteCategory(gomock.Any(), int64(7)).Return(false, nil)
	require.ErrorIs(t, svc.Delete(ctx, 7), serrors.ErrNotFound)

	st.EXPECT().DeleteCategory(gomock.Any(), int64(8)).Return(false, errors.New("db down"))
	err = svc.Delete(ctx, 8)
	require.Error(t, err)
	require.Nil(t, serrors.KindOf(err))
}

func TestCategories_List_Pagination(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewCategories(st)

	st.EXPECT().Categories(gomock.Any(), storage.PageRequest{Page: 1, Size: 2, SortBy: "name", Desc: false}).
		Return([]domain.Category{{ID: 3}, {ID: 4}}, int64(5), nil)

	page, err := svc.List(context.Background(), blog.PageQuery{Page: 1, Size: 2, SortBy: "name", SortDir: "ASC"})
	require.NoError(t, err)
	require.Equal(t, 3, page.TotalPages)
	require.EqualValues(t, 5, page.TotalElements)
	require.False(t, page.First)
	require.False(t, page.Last)
	require.Equal(t, 2, page.NumberOfElements)
}

func TestCategories_List_RejectsBadQuery(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewCategories(st)
	ctx := context.Background()

	for _, q := range []blog.PageQuery{
		{Page: -1},
		{Page: blog.MaxPage + 1, Size: blog.MaxPageSize},
		{Page: 999999999999999999, Size: blog.MaxPageSize},
		{Size: blog.MaxPageSize + 1},
		{SortBy: "password"},
		{SortDir: "sideways"},
	} {
		_, err := svc.List(ctx, q)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "query %+v", q)
	}
}

func TestCategories_List_LastAllowedPage(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewCategories(st)

	st.EXPECT().Categories(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req storage.PageRequest) ([]domain.Category, int64, error) {
			require.Equal(t, blog.MaxPage, req.Page)
			require.LessOrEqual(t, req.Offset(), uint(math.MaxInt32))

			return nil, 0, nil
		})
	_, err := svc.List(context.Background(), blog.PageQuery{Page: blog.MaxPage, Size: blog.MaxPageSize})
	require.NoError(t, err)
}

func TestCategories_List_Defaults(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewCategories(st)

	st.EXPECT().Categories(gomock.Any(), storage.PageRequest{Size: blog.DefaultPageSize, SortBy: "createdAt", Desc: true}).
		Return(nil, int64(0), nil)

	page, err := svc.List(context.Background(), blog.PageQuery{})
	require.NoError(t, err)
	require.NotNil(t, page.Content)
	require.Empty(t, page.Content)
	require.True(t, page.First)
	require.True(t, page.Last)
}
