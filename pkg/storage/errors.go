package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a write violates a unique constraint
	// (slug, name, setting key, username).
	ErrDuplicate = errors.New("duplicate key")
	// ErrReferenceNotFound is returned when a write references a row that does
	// not exist, e.g. an unknown category or article id.
	ErrReferenceNotFound = errors.New("referenced row not found")
)
