package core

import (
	"fmt"
	"math"
)

// ValidateDocument checks the store invariants for a document: a non-empty
// ID and a non-empty vector whose components are all finite
func ValidateDocument(doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("%w: document ID cannot be empty", ErrInvalidDocument)
	}

	if len(doc.Vector) == 0 {
		return fmt.Errorf("%w: document vector cannot be empty", ErrInvalidDocument)
	}

	// Check for NaN or infinite values
	for i, val := range doc.Vector {
		if isNaN(val) {
			return fmt.Errorf("%w: vector contains NaN at index %d", ErrInvalidDocument, i)
		}
		if isInf(val) {
			return fmt.Errorf("%w: vector contains infinite value at index %d", ErrInvalidDocument, i)
		}
	}

	return nil
}

// Helper functions for NaN and Inf detection
func isNaN(f float32) bool {
	return f != f
}

func isInf(f float32) bool {
	return f > math.MaxFloat32 || f < -math.MaxFloat32
}
