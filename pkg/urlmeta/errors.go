package urlmeta

import "myblog/pkg/serrors"

var (
	// ErrInvalidURL is returned when the input cannot be parsed even after adding a scheme.
	ErrInvalidURL = serrors.NewKind("INVALID_URL")
	// ErrFetchFailed covers network errors, timeouts and non-success HTTP responses.
	ErrFetchFailed = serrors.NewKind("FETCH_FAILED")
	// ErrParseFailed covers any other failure while parsing the page.
	ErrParseFailed = serrors.NewKind("PARSE_FAILED")
)

func invalidURL() error {
	return serrors.With(ErrInvalidURL, "Invalid URL format")
}

func fetchFailed(err error) error {
	return serrors.Wrap(ErrFetchFailed, err, "Cannot access this URL")
}

func parseFailed(err error) error {
	return serrors.Wrap(ErrParseFailed, err, "Parsing failed")
}

// outcome labels the result of a resolution for metrics and logs.
func outcome(err error) string {
	switch serrors.KindOf(err) {
	case nil:
		return "success"
	case ErrInvalidURL:
		return "invalid_url"
	case ErrFetchFailed:
		return "fetch_failed"
	default:
		return "parse_failed"
	}
}
