package urlmeta

import (
	"net/url"
	"strings"
)

// ResolveReference turns an icon or image reference found on a page into an
// absolute URL using the page's base URL. The first matching rule wins:
//
//  1. http:// and https:// references are returned unchanged
//  2. protocol-relative references ("//cdn/x.png") get the base scheme
//  3. root-relative references ("/x.png") get the base scheme and host
//  4. anything else is resolved against the base path up to its last "/"
//
// When the base URL cannot be parsed the reference is returned unchanged.
func ResolveReference(ref, base string) string {
	if hasWebScheme(ref) {
		return ref
	}

	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ref
	}

	switch {
	case strings.HasPrefix(ref, "//"):
		return u.Scheme + ":" + ref
	case strings.HasPrefix(ref, "/"):
		return u.Scheme + "://" + u.Host + ref
	}

	dir := u.EscapedPath()
	if dir == "" {
		dir = "/"
	}
	if !strings.HasSuffix(dir, "/") {
		dir = dir[:strings.LastIndex(dir, "/")+1]
	}

	return u.Scheme + "://" + u.Host + dir + ref
}

// faviconURL is the last resort logo. It is built without checking that the
// file exists.
func faviconURL(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host + "/favicon.ico"
}
