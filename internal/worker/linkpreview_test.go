package worker_test

import (
	"context"
	"errors"
	"myblog/internal/blog"
	"myblog/internal/worker"
	"myblog/pkg/domain"
	"myblog/pkg/logger"
	"testing"

	mockstorage "myblog/pkg/storage/mock"
	mockurlmeta "myblog/pkg/urlmeta/mock"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id, linkID int64) *river.Job[blog.LinkPreviewArgs] {
	return &river.Job[blog.LinkPreviewArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   blog.LinkPreviewArgs{FriendLinkID: linkID},
	}
}

func newWorker(t *testing.T) (*worker.LinkPreviewWorker, *mockstorage.MockStorage, *mockurlmeta.MockResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	resolver := mockurlmeta.NewMockResolver(ctrl)

	return worker.NewLinkPreviewWorker(st, resolver), st, resolver
}

func TestLinkPreviewWorker_Work_FillsPreview(t *testing.T) {
	w, st, resolver := newWorker(t)

	st.EXPECT().FriendLinkByID(gomock.Any(), int64(7)).
		Return(&domain.FriendLink{ID: 7, URL: "https://go.dev"}, nil)
	resolver.EXPECT().Resolve(gomock.Any(), "https://go.dev").Return(domain.URLMetadata{
		URL:         "https://go.dev",
		Domain:      "go.dev",
		Description: "Build simple, secure, scalable systems with Go",
		Logo:        "https://go.dev/favicon.ico",
		Success:     true,
	})
	st.EXPECT().FillFriendLinkPreview(gomock.Any(), int64(7),
		"https://go.dev/favicon.ico", "Build simple, secure, scalable systems with Go").
		Return(&domain.FriendLink{ID: 7}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, 7)))
}

func TestLinkPreviewWorker_Work_DeletedLink(t *testing.T) {
	w, st, _ := newWorker(t)

	st.EXPECT().FriendLinkByID(gomock.Any(), int64(7)).Return(nil, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, 7)))
}

func TestLinkPreviewWorker_Work_AlreadyComplete(t *testing.T) {
	w, st, _ := newWorker(t)

	st.EXPECT().FriendLinkByID(gomock.Any(), int64(7)).
		Return(&domain.FriendLink{ID: 7, URL: "https://go.dev", Logo: "l", Description: "d"}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, 7)))
}

func TestLinkPreviewWorker_Work_UnresolvedCancels(t *testing.T) {
	w, st, resolver := newWorker(t)

	st.EXPECT().FriendLinkByID(gomock.Any(), int64(7)).
		Return(&domain.FriendLink{ID: 7, URL: "https://down.example"}, nil)
	resolver.EXPECT().Resolve(gomock.Any(), "https://down.example").
		Return(domain.URLMetadata{URL: "https://down.example", Error: "fetch failed: timeout"})

	err := w.Work(context.Background(), makeJob(1, 7))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestLinkPreviewWorker_Work_StorageErrors(t *testing.T) {
	w, st, resolver := newWorker(t)

	st.EXPECT().FriendLinkByID(gomock.Any(), int64(7)).Return(nil, errors.New("db down"))
	require.Error(t, w.Work(context.Background(), makeJob(1, 7)))

	st.EXPECT().FriendLinkByID(gomock.Any(), int64(8)).
		Return(&domain.FriendLink{ID: 8, URL: "https://go.dev"}, nil)
	resolver.EXPECT().Resolve(gomock.Any(), "https://go.dev").
		Return(domain.URLMetadata{Success: true, Logo: "https://go.dev/favicon.ico"})
	st.EXPECT().FillFriendLinkPreview(gomock.Any(), int64(8), "https://go.dev/favicon.ico", "").
		Return(nil, errors.New("db down"))

	err := w.Work(context.Background(), makeJob(2, 8))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}
