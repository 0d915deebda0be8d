package storage

import "errors"

// Storage errors shared by all backends.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when an insert collides with an
	// existing key on a store that does not silently skip duplicates.
	ErrDuplicateKey = errors.New("duplicate key")
)
