package urlmeta_test

import (
	"myblog/pkg/urlmeta"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "adds https scheme", in: "example.com", want: "https://example.com"},
		{name: "keeps http", in: "http://example.com/a?b=1", want: "http://example.com/a?b=1"},
		{name: "keeps https with path", in: "https://example.com/blog/post", want: "https://example.com/blog/post"},
		{name: "trims whitespace", in: "  example.com/x  ", want: "https://example.com/x"},
		{name: "host with port", in: "localhost:8080/x", want: "https://localhost:8080/x"},
		{name: "mixed case scheme", in: "HTTPS://Example.com", want: "HTTPS://Example.com"},
		{name: "ip address", in: "127.0.0.1", want: "https://127.0.0.1"},
		{name: "other scheme is kept", in: "ftp://files.example.com/pub", want: "ftp://files.example.com/pub"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := urlmeta.NormalizeURL(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURL_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "ht!tp://", "ftp://", "://example.com", "exa mple.com", "https://", "%zz"} {
		_, err := urlmeta.NormalizeURL(in)
		require.ErrorIs(t, err, urlmeta.ErrInvalidURL, "input %q", in)
		require.EqualError(t, err, "Invalid URL format")
	}
}

func TestDomain(t *testing.T) {
	require.Equal(t, "example.com", urlmeta.Domain("https://example.com/blog/post"))
	require.Equal(t, "example.com", urlmeta.Domain("https://example.com:8443/"))
	require.Empty(t, urlmeta.Domain("%zz"))
}
