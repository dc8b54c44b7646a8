package blog_test

import (
	"context"
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTags_Popular_DefaultsLimit(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewTags(st)

	st.EXPECT().PopularTags(gomock.Any(), uint(blog.DefaultPopularTags)).Return([]domain.Tag{{Name: "go"}}, nil)
	got, err := svc.Popular(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	st.EXPECT().PopularTags(gomock.Any(), uint(3)).Return(nil, nil)
	_, err = svc.Popular(context.Background(), 3)
	require.NoError(t, err)
}

func TestTags_Update_ExplicitSlug(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewTags(st)

	st.EXPECT().UpdateTag(gomock.Any(), domain.Tag{ID: 2, Name: "Golang", Slug: "go"}).
		DoAndReturn(func(_ context.Context, tag domain.Tag) (*domain.Tag, error) { return &tag, nil })

	got, err := svc.Update(context.Background(), 2, blog.TagInput{Name: "Golang", Slug: "Go"})
	require.NoError(t, err)
	require.Equal(t, "go", got.Slug)
}

func TestTags_Create_NameTooLong(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewTags(st)

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.Create(context.Background(), blog.TagInput{Name: string(long)})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "name must be at most 50 characters", serrors.PublicMessage(err))
}

func TestTags_All(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewTags(st)

	st.EXPECT().AllTags(gomock.Any(), true).Return([]domain.Tag{{ID: 1}}, nil)
	got, err := svc.All(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 1)

	st.EXPECT().TagBySlug(gomock.Any(), "x").Return(nil, nil)
	_, err = svc.BySlug(context.Background(), "x")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
