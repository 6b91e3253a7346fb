package ports

import "errors"

// Errors reported by repository adapters.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)
