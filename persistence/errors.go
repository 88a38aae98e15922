package persistence

import "errors"

// Common errors
var (
	ErrIO            = errors.New("snapshot i/o failure")
	ErrSerialization = errors.New("malformed snapshot")
)
