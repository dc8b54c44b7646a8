package storage

// PageRequest selects one page of a list query. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
	// SortBy is an API field name such as "createdAt" or "viewCount".
	// Implementations map it to a column and fall back to creation time.
	SortBy string
	// Desc sorts in descending order.
	Desc bool
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() uint {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}

	return uint(p.Page * p.Size) //nolint: gosec
}
