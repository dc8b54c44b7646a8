package domain

// URLMetadata is the link preview resolved for an arbitrary URL.
// It is built per request and never persisted.
type URLMetadata struct {
	// URL is the effective URL, with the https scheme added when the input had none.
	URL string `json:"url"`
	// Domain is the host component of URL. Empty when it could not be derived.
	Domain string `json:"domain"`
	// Title is the best-effort page title.
	Title string `json:"title"`
	// Description is the best-effort page description.
	Description string `json:"description"`
	// Logo is an absolute URL to a representative icon or image.
	Logo string `json:"logo"`
	// Success is true iff fetching and parsing completed without a fatal error.
	Success bool `json:"success"`
	// Error describes the failure. Set only when Success is false.
	Error string `json:"error,omitempty"`
}
