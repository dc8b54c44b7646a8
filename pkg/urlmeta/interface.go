// Package urlmeta resolves link previews for arbitrary URLs: it repairs the
// URL, fetches the page once and extracts title, description and logo through
// ordered fallback chains. Failures never escape as errors; they are reported
// inside the returned domain.URLMetadata.
package urlmeta

import (
	"context"
	"myblog/pkg/domain"
)

// Resolver builds the link preview for a URL.
//
//go:generate mockgen -package mockurlmeta -source=interface.go -destination=mock/mockurlmeta.go *
type Resolver interface {
	// Resolve always returns a well-formed result. Success is false and Error
	// is set when the URL is invalid, unreachable or could not be parsed.
	Resolve(ctx context.Context, rawURL string) domain.URLMetadata
}
