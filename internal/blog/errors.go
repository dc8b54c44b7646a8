package blog

import (
	"errors"
	"fmt"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
)

// storeErr converts a storage failure of action on what into a semantic error.
func storeErr(err error, action, what string) error {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return serrors.Wrap(serrors.ErrConflict, err, "%s already exists", what)
	case errors.Is(err, storage.ErrReferenceNotFound):
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s references a missing record", what)
	default:
		return fmt.Errorf("could not %s %s: %w", action, what, err)
	}
}

func notFound(what string) error {
	return serrors.With(serrors.ErrNotFound, "%s not found", what)
}
