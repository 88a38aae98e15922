package core

import (
	"fmt"

	"github.com/viant/vec/search"
)

// Dot calculates the dot product of two vectors
func Dot(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	var product float32
	for i := range a {
		product += a[i] * b[i]
	}

	return product, nil
}

// Norm calculates the Euclidean (L2) length of a vector
func Norm(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return search.Float32s(v).Magnitude()
}

// Normalize returns v scaled to unit length. A zero-magnitude vector
// cannot be normalized and fails with ErrDegenerateVector.
func Normalize(v []float32) ([]float32, error) {
	n := Norm(v)
	if n == 0 {
		return nil, ErrDegenerateVector
	}

	unit := make([]float32, len(v))
	for i := range v {
		unit[i] = v[i] / n
	}

	return unit, nil
}

// CosineSimilarity calculates cosine similarity between two vectors.
// Returns similarity score (higher = more similar), failing with
// ErrDimensionMismatch on length mismatch and ErrDegenerateVector if
// either vector has zero magnitude.
func CosineSimilarity(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	normA := Norm(a)
	normB := Norm(b)
	if normA == 0 || normB == 0 {
		return 0, ErrDegenerateVector
	}

	return 1 - search.Float32s(a).CosineDistanceWithMagnitudesNeon(b, normA, normB), nil
}
