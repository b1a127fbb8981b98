package storage

import "errors"

var (
	// ErrNotFound is returned when the target of an update does not exist.
	// Deletes treat a missing id as a silent no-op instead.
	ErrNotFound = errors.New("record not found")

	// ErrParse is returned when a stored blob is not valid JSON or not the
	// expected shape.
	ErrParse = errors.New("stored value is not valid JSON")

	// ErrStoreUnavailable wraps failures of the underlying device storage.
	ErrStoreUnavailable = errors.New("storage unavailable")
)
