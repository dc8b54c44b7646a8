package blog_test

import (
	"context"
	"fmt"
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"testing"

	mockstorage "myblog/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettings_Upsert(t *testing.T) {
	ctrl, st := newStorage(t)
	svc := blog.NewSettings(st)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().UpsertSetting(gomock.Any(), domain.Setting{
				Key: "site.title", Value: "My Blog", Type: domain.DefaultSettingType, Public: true,
			}).Return(&domain.Setting{ID: 1, Key: "site.title"}, nil),
			tx.EXPECT().UpsertSetting(gomock.Any(), domain.Setting{
				Key: "posts.per_page", Value: "20", Type: "number",
			}).Return(&domain.Setting{ID: 2, Key: "posts.per_page"}, nil),
		)
	})

	got, err := svc.Upsert(context.Background(), []blog.SettingInput{
		{Key: " site.title ", Value: "My Blog", Public: true},
		{Key: "posts.per_page", Value: "20", Type: "number"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestSettings_Upsert_ValidatesBeforeWriting(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewSettings(st)

	_, err := svc.Upsert(context.Background(), []blog.SettingInput{
		{Key: "ok", Value: "1"},
		{Value: "missing key"},
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "key is required", serrors.PublicMessage(err))
}

func TestSettings_Create_DuplicateKey(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewSettings(st)

	st.EXPECT().CreateSetting(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not insert: %w", storage.ErrDuplicate))

	_, err := svc.Create(context.Background(), blog.SettingInput{Key: "site.title"})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestSettings_ByKey(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewSettings(st)
	ctx := context.Background()

	st.EXPECT().SettingByKey(gomock.Any(), "site.title").Return(&domain.Setting{Key: "site.title", Value: "x"}, nil)
	got, err := svc.ByKey(ctx, "site.title")
	require.NoError(t, err)
	require.Equal(t, "x", got.Value)

	st.EXPECT().SettingByKey(gomock.Any(), "nope").Return(nil, nil)
	_, err = svc.ByKey(ctx, "nope")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	filter := storage.SettingFilter{PublicOnly: true}
	st.EXPECT().Settings(gomock.Any(), filter).Return([]domain.Setting{{Key: "a"}}, nil)
	items, err := svc.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
