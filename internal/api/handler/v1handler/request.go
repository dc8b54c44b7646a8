package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"myblog/internal/blog"
	"myblog/pkg/serrors"
	"net/http"
	"strconv"
)

const maxBodyBytes = 1 << 20

func decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "request body is not valid JSON")
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a positive integer", name)
	}

	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be an integer", name)
	}

	return v, nil
}

func pageQuery(r *http.Request) (blog.PageQuery, error) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		return blog.PageQuery{}, err
	}
	size, err := queryInt(r, "size", 0)
	if err != nil {
		return blog.PageQuery{}, err
	}
	q := r.URL.Query()

	return blog.PageQuery{Page: page, Size: size, SortBy: q.Get("sortBy"), SortDir: q.Get("sortDir")}, nil
}

func ptr[T any](v T) *T { return &v }
