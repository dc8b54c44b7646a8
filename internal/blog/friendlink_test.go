package blog_test

import (
	"context"
	"errors"
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"testing"

	mockstorage "myblog/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFriendLinks_Apply_EnqueuesPreview(t *testing.T) {
	ctrl, st := newStorage(t)
	svc := blog.NewFriendLinks(st)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateFriendLink(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f domain.FriendLink) (*domain.FriendLink, error) {
				require.False(t, f.Approved, "applications are never pre-approved")
				f.ID = 11

				return &f, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), blog.LinkPreviewArgs{FriendLinkID: 11}, (*river.InsertOpts)(nil)).
			Return(true, nil)
	})

	got, err := svc.Apply(context.Background(), blog.FriendLinkInput{
		Name: "Gopher", URL: "https://go.dev", Approved: true,
	})
	require.NoError(t, err)
	require.EqualValues(t, 11, got.ID)
}

func TestFriendLinks_Apply_CompleteLinkSkipsPreview(t *testing.T) {
	ctrl, st := newStorage(t)
	svc := blog.NewFriendLinks(st)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateFriendLink(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f domain.FriendLink) (*domain.FriendLink, error) {
				f.ID = 12

				return &f, nil
			})
	})

	_, err := svc.Apply(context.Background(), blog.FriendLinkInput{
		Name: "Gopher", URL: "https://go.dev", Logo: "https://go.dev/logo.png", Description: "Go",
	})
	require.NoError(t, err)
}

func TestFriendLinks_Apply_JobFailureFails(t *testing.T) {
	ctrl, st := newStorage(t)
	svc := blog.NewFriendLinks(st)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateFriendLink(gomock.Any(), gomock.Any()).Return(&domain.FriendLink{ID: 1}, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("queue down"))
	})

	_, err := svc.Apply(context.Background(), blog.FriendLinkInput{Name: "Gopher", URL: "https://go.dev"})
	require.Error(t, err)
}

func TestFriendLinks_Apply_Invalid(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewFriendLinks(st)

	_, err := svc.Apply(context.Background(), blog.FriendLinkInput{Name: "Gopher", URL: "go.dev"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "url must be a valid URL", serrors.PublicMessage(err))
}

func TestFriendLinks_ApprovedAndClick(t *testing.T) {
	_, st := newStorage(t)
	svc := blog.NewFriendLinks(st)
	ctx := context.Background()

	st.EXPECT().ApprovedFriendLinks(gomock.Any()).Return([]domain.FriendLink{{ID: 1}, {ID: 2}}, nil)
	got, err := svc.Approved(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	st.EXPECT().ClickFriendLink(gomock.Any(), int64(1)).Return(true, nil)
	require.NoError(t, svc.Click(ctx, 1))

	st.EXPECT().SetFriendLinkApproved(gomock.Any(), int64(9), true).Return(nil, nil)
	_, err = svc.SetApproved(ctx, 9, true)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
