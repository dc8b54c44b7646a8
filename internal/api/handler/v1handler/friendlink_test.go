package v1handler_test

import (
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFriendLinks_ApplyIsPublic(t *testing.T) {
	h, m := newHandler(t)

	m.friendLinks.EXPECT().Apply(gomock.Any(), blog.FriendLinkInput{Name: "Go", URL: "https://go.dev"}).
		Return(&domain.FriendLink{ID: 1, Name: "Go", URL: "https://go.dev"}, nil)

	rec, _ := do(t, h, http.MethodPost, "/v1/friend-links", "", `{"name":"Go","url":"https://go.dev"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFriendLinks_Lists(t *testing.T) {
	h, m := newHandler(t)

	m.friendLinks.EXPECT().Approved(gomock.Any()).Return([]domain.FriendLink{{ID: 1}}, nil)
	rec, _ := do(t, h, http.MethodGet, "/v1/friend-links/approved", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	pending := false
	m.friendLinks.EXPECT().List(gomock.Any(), &pending, blog.PageQuery{}).
		Return(&domain.Page[domain.FriendLink]{Content: []domain.FriendLink{}}, nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/friend-links/pending", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.friendLinks.EXPECT().Click(gomock.Any(), int64(1)).Return(nil)
	rec, _ = do(t, h, http.MethodPost, "/v1/friend-links/1/click", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
