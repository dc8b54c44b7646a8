package urlmeta

import (
	"net"
	"net/url"
	"strings"
	"unicode"
)

// NormalizeURL turns user input into the effective URL used for fetching.
//
//   - surrounding whitespace is trimmed
//   - input with an explicit scheme ("ftp://host") is kept as is
//   - anything else gets https:// prepended
//   - the result must parse and carry a plausible host
//
// Schemes other than http and https are accepted here and fail when fetched.
// Apart from the added scheme the input is returned unchanged.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", invalidURL()
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || !validHost(u.Hostname()) {
		return "", invalidURL()
	}

	return raw, nil
}

// Domain returns the host of an effective URL without the port, or an empty
// string when it cannot be derived.
func Domain(effectiveURL string) string {
	u, err := url.Parse(effectiveURL)
	if err != nil {
		return ""
	}

	return u.Hostname()
}

func hasWebScheme(s string) bool {
	lower := strings.ToLower(s)

	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func validHost(host string) bool {
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	if strings.HasPrefix(host, ".") || strings.HasPrefix(host, "-") {
		return false
	}
	for _, r := range host {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' || r == '_' {
			continue
		}

		return false
	}

	return true
}
