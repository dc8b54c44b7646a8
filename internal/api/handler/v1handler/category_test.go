package v1handler_test

import (
	"encoding/json"
	"myblog/internal/blog"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategories_Create(t *testing.T) {
	h, m := newHandler(t)

	m.categories.EXPECT().Create(gomock.Any(), blog.CategoryInput{Name: "Go", Color: "#00ADD8"}).
		Return(&domain.Category{ID: 1, Name: "Go", Slug: "go", Color: "#00ADD8"}, nil)

	rec, env := do(t, h, http.MethodPost, "/v1/categories", adminToken, `{"name":"Go","color":"#00ADD8"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "success", env.Message)

	var got domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Equal(t, "go", got.Slug)
}

func TestCategories_BadBodyAndID(t *testing.T) {
	h, _ := newHandler(t)

	rec, env := do(t, h, http.MethodPost, "/v1/categories", adminToken, `{"name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "request body is not valid JSON", env.Message)

	rec, _ = do(t, h, http.MethodPost, "/v1/categories", adminToken, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/v1/categories/abc", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "id must be a positive integer", env.Message)
}

func TestCategories_NotFound(t *testing.T) {
	h, m := newHandler(t)

	m.categories.EXPECT().ByID(gomock.Any(), int64(42)).
		Return(nil, serrors.With(serrors.ErrNotFound, "category not found"))

	rec, env := do(t, h, http.MethodGet, "/v1/categories/42", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, 404, env.Code)
	require.Equal(t, "category not found", env.Message)
}

func TestCategories_ListAndAll(t *testing.T) {
	h, m := newHandler(t)

	m.categories.EXPECT().List(gomock.Any(), blog.PageQuery{Page: 2, Size: 5, SortBy: "name", SortDir: "asc"}).
		Return(&domain.Page[domain.Category]{Content: []domain.Category{}, Number: 2, Size: 5}, nil)
	rec, _ := do(t, h, http.MethodGet, "/v1/categories?page=2&size=5&sortBy=name&sortDir=asc", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/v1/categories?page=x", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "page must be an integer", env.Message)

	m.categories.EXPECT().All(gomock.Any(), true).Return([]domain.Category{{ID: 1}}, nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/categories/with-articles", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.categories.EXPECT().BySlug(gomock.Any(), "go").Return(&domain.Category{ID: 1}, nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/categories/slug/go", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTags_Popular(t *testing.T) {
	h, m := newHandler(t)

	m.tags.EXPECT().Popular(gomock.Any(), blog.DefaultPopularTags).Return([]domain.Tag{{Name: "go"}}, nil)
	rec, _ := do(t, h, http.MethodGet, "/v1/tags/popular", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.tags.EXPECT().Popular(gomock.Any(), 3).Return(nil, nil)
	rec, _ = do(t, h, http.MethodGet, "/v1/tags/popular?limit=3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	m.tags.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
	rec, env := do(t, h, http.MethodDelete, "/v1/tags/4", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", string(env.Data))
}
