package urlmeta_test

import (
	"myblog/pkg/urlmeta"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const base = "https://example.com/blog/post"

func doc(t *testing.T, head string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader("<html><head>" + head + "</head><body></body></html>"))
	require.NoError(t, err)

	return d
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		head string
		want string
	}{
		{"og wins over title", `<meta property="og:title" content="A"><title>B</title>`, "A"},
		{"twitter before title", `<meta name="twitter:title" content="T"><title>B</title>`, "T"},
		{"og before twitter", `<meta name="twitter:title" content="T"><meta property="og:title" content="A">`, "A"},
		{"title only", `<title>B</title>`, "B"},
		{"title whitespace collapsed", "<title>\n  Hello \n  World </title>", "Hello World"},
		{"empty og falls through", `<meta property="og:title" content=""><title>B</title>`, "B"},
		{"nothing", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, urlmeta.Title(doc(t, tt.head)))
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		head string
		want string
	}{
		{"og first", `<meta name="description" content="D"><meta property="og:description" content="O">`, "O"},
		{"twitter second", `<meta name="description" content="D"><meta name="twitter:description" content="W">`, "W"},
		{"plain description", `<meta name="description" content="D">`, "D"},
		{"nothing", `<title>x</title>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, urlmeta.Description(doc(t, tt.head)))
		})
	}
}

func TestLogo(t *testing.T) {
	tests := []struct {
		name string
		head string
		want string
	}{
		{
			"apple touch icon first",
			`<link rel="icon" href="/favicon.png"><link rel="apple-touch-icon" href="/apple.png">`,
			"https://example.com/apple.png",
		},
		{
			"icon before shortcut icon",
			`<link rel="shortcut icon" href="/s.ico"><link rel="icon" href="i.png">`,
			"https://example.com/blog/i.png",
		},
		{"shortcut icon", `<link rel="shortcut icon" href="//cdn.example.com/s.ico">`, "https://cdn.example.com/s.ico"},
		{"rel matched ignoring case", `<link rel="Icon" href="/i.png">`, "https://example.com/i.png"},
		{"og image", `<meta property="og:image" content="https://img.example.com/og.png">`, "https://img.example.com/og.png"},
		{"empty href skips rule", `<link rel="icon" href=""><meta property="og:image" content="/og.png">`, "https://example.com/og.png"},
		{"favicon fallback", `<title>x</title>`, "https://example.com/favicon.ico"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, urlmeta.Logo(doc(t, tt.head), base))
		})
	}
}
