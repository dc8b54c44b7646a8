package serrors_test

import (
	"errors"
	"fmt"
	"myblog/pkg/serrors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "article %d not found", 42)
	require.Equal(t, "article 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "loading article")
	require.Equal(t, "loading article: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.KindOnly(serrors.ErrConflict)))

	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "bad slug"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrTimeout, serrors.KindOf(serrors.ErrTimeout))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[error]int{
		nil:                                    http.StatusOK,
		errors.New("boom"):                     http.StatusInternalServerError,
		serrors.KindOnly(serrors.ErrNotFound):  http.StatusNotFound,
		serrors.With(serrors.ErrConflict, "x"): http.StatusConflict,
		fmt.Errorf("wrapped: %w", serrors.KindOnly(serrors.ErrUnauthorized)): http.StatusUnauthorized,
	}
	for err, want := range cases {
		require.Equal(t, want, serrors.HTTPStatus(err), "err=%v", err)
	}
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "internal error", serrors.PublicMessage(errors.New("secret dsn leaked")))
	require.Equal(t, "internal error",
		serrors.PublicMessage(serrors.Wrap(serrors.ErrInternal, errors.New("x"), "db exploded")))
	require.Equal(t, "resource not found", serrors.PublicMessage(serrors.KindOnly(serrors.ErrNotFound)))
	require.Equal(t, "category not found",
		serrors.PublicMessage(serrors.Wrap(serrors.ErrNotFound, errors.New("sql: no rows"), "category not found")))
}
