package v1handler_test

import (
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func emptyArticles() *domain.Page[domain.Article] {
	p := domain.NewPage[domain.Article](nil, 0, 10, 0)

	return &p
}

func TestArticles_PublicListsFilterPublished(t *testing.T) {
	h, m := newHandler(t)
	q := blog.PageQuery{}

	m.articles.EXPECT().List(gomock.Any(), storage.ArticleFilter{PublishedOnly: true}, q).Return(emptyArticles(), nil)
	rec, _ := do(t, h, http.MethodGet, "/v1/articles/published", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.articles.EXPECT().List(gomock.Any(), storage.ArticleFilter{PublishedOnly: true, PinnedOnly: true}, q).
		Return(emptyArticles(), nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/articles/pinned", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.articles.EXPECT().List(gomock.Any(), storage.ArticleFilter{PublishedOnly: true, CategoryID: 3}, q).
		Return(emptyArticles(), nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/articles/category/3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.articles.EXPECT().List(gomock.Any(), storage.ArticleFilter{PublishedOnly: true, TagID: 4}, q).
		Return(emptyArticles(), nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/articles/tag/4", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.articles.EXPECT().List(gomock.Any(), storage.ArticleFilter{PublishedOnly: true, Query: "go"}, q).
		Return(emptyArticles(), nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/articles/search?keyword=go", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.articles.EXPECT().List(gomock.Any(), storage.ArticleFilter{PublishedOnly: true},
		blog.PageQuery{Size: 5, SortBy: "viewCount", SortDir: "desc"}).Return(emptyArticles(), nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/articles/popular?size=5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestArticles_SearchNeedsKeyword(t *testing.T) {
	h, _ := newHandler(t)

	rec, env := do(t, h, http.MethodGet, "/v1/articles/search?keyword=%20", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "keyword is required", env.Message)
}

func TestArticles_AdminListIncludesDrafts(t *testing.T) {
	h, m := newHandler(t)

	rec, _ := do(t, h, http.MethodGet, "/v1/articles", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	m.articles.EXPECT().List(gomock.Any(), storage.ArticleFilter{}, blog.PageQuery{}).Return(emptyArticles(), nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/articles", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestArticles_CountersAndFlags(t *testing.T) {
	h, m := newHandler(t)

	m.articles.EXPECT().Count(gomock.Any(), int64(7), storage.ArticleViews).Return(nil)
	rec, _ := do(t, h, http.MethodPost, "/v1/articles/7/view", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.articles.EXPECT().Count(gomock.Any(), int64(8), storage.ArticleLikes).
		Return(serrors.With(serrors.ErrNotFound, "article not found"))
	rec, _ = do(t, h, http.MethodPost, "/v1/articles/8/like", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/v1/articles/7/publish", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	published := true
	m.articles.EXPECT().SetFlags(gomock.Any(), int64(7), storage.ArticleFlags{Published: &published}).
		Return(&domain.Article{ID: 7, Published: true}, nil)
	rec, _ = do(t, h, http.MethodPost, "/v1/articles/7/publish", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	unpinned := false
	m.articles.EXPECT().SetFlags(gomock.Any(), int64(7), storage.ArticleFlags{Pinned: &unpinned}).
		Return(&domain.Article{ID: 7}, nil)
	rec, _ = do(t, h, http.MethodPost, "/v1/articles/7/unpin", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestArticles_Create(t *testing.T) {
	h, m := newHandler(t)

	cat := int64(2)
	m.articles.EXPECT().Create(gomock.Any(), blog.ArticleInput{
		Title: "Hello", Content: "World", Published: true, CategoryID: &cat, TagIDs: []int64{1, 3},
	}).Return(&domain.Article{ID: 1}, nil)

	rec, _ := do(t, h, http.MethodPost, "/v1/articles", adminToken,
		`{"title":"Hello","content":"World","isPublished":true,"categoryId":2,"tagIds":[1,3]}`)
	require.Equal(t, http.StatusOK, rec.Code)
}
