package urlmeta

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fetch performs exactly one GET request for pageURL and parses the body.
// Redirects are followed by the http.Client. Any failure is a fetch error.
func (c *Client) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.options.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fetchFailed(err)
	}
	if scheme := strings.ToLower(req.URL.Scheme); scheme != "http" && scheme != "https" {
		return nil, fetchFailed(fmt.Errorf("unsupported protocol scheme %q", req.URL.Scheme))
	}
	req.Header.Set("User-Agent", c.options.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fetchFailed(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fetchFailed(fmt.Errorf("HTTP error fetching URL. Status=%d", resp.StatusCode))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !isMarkup(ct) {
		return nil, fetchFailed(fmt.Errorf("unhandled content type %q", ct))
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, c.options.MaxBodyBytes))
	if err != nil {
		return nil, fetchFailed(err)
	}

	return doc, nil
}

// isMarkup accepts text/* and XML media types.
func isMarkup(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return strings.HasPrefix(mediaType, "text/") ||
		mediaType == "application/xml" ||
		strings.HasSuffix(mediaType, "+xml")
}
