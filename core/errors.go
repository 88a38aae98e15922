package core

import "errors"

// Common errors
var (
	ErrInvalidDocument   = errors.New("invalid document")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrDegenerateVector  = errors.New("zero magnitude vector")
)
