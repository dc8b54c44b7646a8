package urlmeta_test

import (
	"context"
	"errors"
	"myblog/pkg/logger"
	"myblog/pkg/urlmeta"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const page = `<!doctype html>
<html><head>
<title>Plain Title</title>
<meta property="og:title" content="OG Title">
<meta name="description" content="Plain description">
<meta name="twitter:description" content="Twitter description">
<link rel="icon" href="/static/icon.png">
</head><body><h1>hi</h1></body></html>`

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newClient(t *testing.T, opts urlmeta.Options) *urlmeta.Client {
	t.Helper()
	c, err := urlmeta.New(opts)
	require.NoError(t, err)

	return c
}

func TestClient_Resolve_Success(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	c := newClient(t, urlmeta.Options{})
	res := c.Resolve(context.Background(), srv.URL+"/blog/post")

	require.True(t, res.Success)
	require.Empty(t, res.Error)
	require.Equal(t, srv.URL+"/blog/post", res.URL)
	require.Equal(t, "127.0.0.1", res.Domain)
	require.Equal(t, "OG Title", res.Title)
	require.Equal(t, "Twitter description", res.Description)
	require.Equal(t, srv.URL+"/static/icon.png", res.Logo)
	require.Equal(t, urlmeta.DefaultUserAgent, gotUA)
}

func TestClient_Resolve_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Moved</title></head></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res := newClient(t, urlmeta.Options{}).Resolve(context.Background(), srv.URL+"/old")
	require.True(t, res.Success)
	require.Equal(t, "Moved", res.Title)
	// no icon tags: favicon fallback built from the requested URL
	require.Equal(t, srv.URL+"/favicon.ico", res.Logo)
	// the domain drops the port that the logo needs to stay reachable
	require.Equal(t, "127.0.0.1", res.Domain)
	require.Contains(t, res.Logo, "127.0.0.1:")
}

func TestClient_Resolve_Idempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	c := newClient(t, urlmeta.Options{})
	first := c.Resolve(context.Background(), srv.URL)
	second := c.Resolve(context.Background(), srv.URL)
	require.Equal(t, first, second)
}

func TestClient_Resolve_InvalidURLSkipsNetwork(t *testing.T) {
	c := newClient(t, urlmeta.Options{HTTPClient: &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			t.Fatalf("unexpected request to %s", r.URL)

			return nil, errors.New("unreachable")
		}),
	}})

	res := c.Resolve(context.Background(), "ht!tp://")
	require.False(t, res.Success)
	require.Equal(t, "Invalid URL format", res.Error)
	require.Equal(t, "ht!tp://", res.URL)
	require.Empty(t, res.Domain)
}

func TestClient_Resolve_UnsupportedSchemeFailsAtFetch(t *testing.T) {
	c := newClient(t, urlmeta.Options{HTTPClient: &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			t.Fatalf("unexpected request to %s", r.URL)

			return nil, errors.New("unreachable")
		}),
	}})

	res := c.Resolve(context.Background(), "ftp://files.example.com/pub")
	require.False(t, res.Success)
	require.Equal(t, "ftp://files.example.com/pub", res.URL)
	require.Equal(t, "files.example.com", res.Domain)
	require.True(t, strings.HasPrefix(res.Error, "Cannot access this URL: "), res.Error)
	require.Contains(t, res.Error, `unsupported protocol scheme "ftp"`)
}

func TestClient_Resolve_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	res := newClient(t, urlmeta.Options{}).Resolve(context.Background(), srv.URL)
	require.False(t, res.Success)
	require.True(t, strings.HasPrefix(res.Error, "Cannot access this URL: "), res.Error)
	require.Contains(t, res.Error, "Status=404")
	require.Equal(t, "127.0.0.1", res.Domain)
}

func TestClient_Resolve_TimeoutKeepsDomain(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	res := newClient(t, urlmeta.Options{Timeout: 100 * time.Millisecond}).Resolve(context.Background(), srv.URL)
	require.Less(t, time.Since(start), 5*time.Second)
	require.False(t, res.Success)
	require.True(t, strings.HasPrefix(res.Error, "Cannot access this URL: "), res.Error)
	require.Equal(t, "127.0.0.1", res.Domain)
}

func TestClient_Resolve_TransportError(t *testing.T) {
	c := newClient(t, urlmeta.Options{HTTPClient: &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	}})

	res := c.Resolve(context.Background(), "example.com")
	require.False(t, res.Success)
	require.Equal(t, "https://example.com", res.URL)
	require.Equal(t, "example.com", res.Domain)
	require.Contains(t, res.Error, "connection refused")
}

func TestClient_Resolve_NonHTMLContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	res := newClient(t, urlmeta.Options{}).Resolve(context.Background(), srv.URL)
	require.False(t, res.Success)
	require.Contains(t, res.Error, "unhandled content type")
}

func TestClient_Resolve_PanicBecomesParseFailure(t *testing.T) {
	c := newClient(t, urlmeta.Options{HTTPClient: &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			panic("broken transport")
		}),
	}})

	res := c.Resolve(context.Background(), "https://example.com")
	require.False(t, res.Success)
	require.Equal(t, "Parsing failed: broken transport", res.Error)
}

func TestClient_Resolve_RecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	c := newClient(t, urlmeta.Options{MeterProvider: mp})

	_ = c.Resolve(context.Background(), "ht!tp://")
	_ = c.Resolve(context.Background(), "")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	var seenHistogram bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				require.Equal(t, "urlmeta.resolve.total", m.Name)
				for _, dp := range data.DataPoints {
					outcome, ok := dp.Attributes.Value("outcome")
					require.True(t, ok)
					require.Equal(t, "invalid_url", outcome.AsString())
					total += dp.Value
				}
			case metricdata.Histogram[float64]:
				require.Equal(t, "urlmeta.resolve.duration", m.Name)
				seenHistogram = true
			}
		}
	}
	require.Equal(t, int64(2), total)
	require.True(t, seenHistogram)
}
