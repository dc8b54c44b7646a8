package v1handler_test

import (
	"context"
	"encoding/json"
	"myblog/pkg/domain"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFetchMetadata_AlwaysOK(t *testing.T) {
	h, m := newHandler(t)

	m.resolver.EXPECT().Resolve(gomock.Any(), "example.com").Return(domain.URLMetadata{
		URL:     "https://example.com",
		Domain:  "example.com",
		Title:   "Example Domain",
		Logo:    "https://example.com/favicon.ico",
		Success: true,
	})
	rec, env := do(t, h, http.MethodGet, "/v1/url-metadata/fetch?url=example.com", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 200, env.Code)

	var meta domain.URLMetadata
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	require.Equal(t, "Example Domain", meta.Title)
	require.True(t, meta.Success)

	// failures travel in the payload
	m.resolver.EXPECT().Resolve(gomock.Any(), "ht!tp://").Return(domain.URLMetadata{
		URL: "ht!tp://", Error: "Invalid URL format",
	})
	rec, env = do(t, h, http.MethodGet, "/url-metadata/fetch?url=ht!tp://", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 200, env.Code)
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	require.False(t, meta.Success)
	require.Equal(t, "Invalid URL format", meta.Error)
}

func TestFetchMetadata_ResolverPanic(t *testing.T) {
	h, m := newHandler(t)

	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string) domain.URLMetadata { panic("boom") })

	rec, env := do(t, h, http.MethodGet, "/url-metadata/fetch?url=x", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 500, env.Code)
	require.Contains(t, env.Message, "boom")
	require.Equal(t, "null", string(env.Data))
}
