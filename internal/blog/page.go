package blog

import (
	"math"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"slices"
	"strings"
)

const (
	// DefaultPageSize is used when a query does not name a page size.
	DefaultPageSize = 10
	// MaxPageSize caps the page size of every list.
	MaxPageSize = 100
	// MaxPage keeps page*size within a 32-bit row offset.
	MaxPage = math.MaxInt32 / MaxPageSize
	// DefaultSortBy orders lists by creation time unless the caller asks otherwise.
	DefaultSortBy = "createdAt"
)

// PageQuery is a list request as received from clients.
type PageQuery struct {
	// Page is zero-based.
	Page int
	// Size defaults to DefaultPageSize.
	Size int
	// SortBy is a field name such as "createdAt"; it must be allowed by the list.
	SortBy string
	// SortDir is "asc" or "desc" and defaults to "desc".
	SortDir string
}

// request validates q against the sortable fields of a list.
func (q PageQuery) request(sortable ...string) (storage.PageRequest, error) {
	if q.Page < 0 || q.Page > MaxPage {
		return storage.PageRequest{}, serrors.With(serrors.ErrBadRequest, "page must be between 0 and %d", MaxPage)
	}

	size := q.Size
	switch {
	case size == 0:
		size = DefaultPageSize
	case size < 0 || size > MaxPageSize:
		return storage.PageRequest{}, serrors.With(serrors.ErrBadRequest, "size must be between 1 and %d", MaxPageSize)
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if sortBy != DefaultSortBy && sortBy != "id" && !slices.Contains(sortable, sortBy) {
		return storage.PageRequest{}, serrors.With(serrors.ErrBadRequest, "cannot sort by %q", q.SortBy)
	}

	var desc bool
	switch strings.ToLower(q.SortDir) {
	case "", "desc":
		desc = true
	case "asc":
	default:
		return storage.PageRequest{}, serrors.With(serrors.ErrBadRequest, "sortDir must be asc or desc")
	}

	return storage.PageRequest{Page: q.Page, Size: size, SortBy: sortBy, Desc: desc}, nil
}

func newPage[T any](content []T, req storage.PageRequest, total int64) *domain.Page[T] {
	p := domain.NewPage(content, req.Page, req.Size, total)

	return &p
}
