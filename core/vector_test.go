package core

import (
	"errors"
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
		wantErr  bool
	}{
		{
			name:     "simple dot product",
			a:        []float32{1, 2, 3},
			b:        []float32{4, 5, 6},
			expected: 32.0, // 1*4 + 2*5 + 3*6 = 4 + 10 + 18 = 32
			wantErr:  false,
		},
		{
			name:     "orthogonal vectors",
			a:        []float32{1, 0},
			b:        []float32{0, 1},
			expected: 0.0,
			wantErr:  false,
		},
		{
			name:    "different dimensions",
			a:       []float32{1, 0},
			b:       []float32{1, 0, 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Dot(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("Dot() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("Dot() error = %v, want ErrDimensionMismatch", err)
			}
			if !tt.wantErr && math.Abs(float64(result-tt.expected)) > 1e-6 {
				t.Errorf("Dot() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name     string
		v        []float32
		expected float32
	}{
		{
			name:     "unit vector",
			v:        []float32{1, 0, 0},
			expected: 1.0,
		},
		{
			name:     "pythagorean triple",
			v:        []float32{3, 4},
			expected: 5.0,
		},
		{
			name:     "zero vector",
			v:        []float32{0, 0, 0},
			expected: 0.0,
		},
		{
			name:     "empty vector",
			v:        []float32{},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Norm(tt.v)
			if math.Abs(float64(result-tt.expected)) > 1e-6 {
				t.Errorf("Norm() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		v        []float32
		expected []float32
		wantErr  bool
	}{
		{
			name:     "already unit length",
			v:        []float32{0, 1, 0},
			expected: []float32{0, 1, 0},
			wantErr:  false,
		},
		{
			name:     "scales to unit length",
			v:        []float32{3, 4},
			expected: []float32{0.6, 0.8},
			wantErr:  false,
		},
		{
			name:    "zero vector",
			v:       []float32{0, 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize(tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrDegenerateVector) {
					t.Errorf("Normalize() error = %v, want ErrDegenerateVector", err)
				}
				return
			}
			for i := range tt.expected {
				if math.Abs(float64(result[i]-tt.expected[i])) > 1e-6 {
					t.Errorf("Normalize()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	v := []float32{3, 4}
	if _, err := Normalize(v); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if v[0] != 3 || v[1] != 4 {
		t.Errorf("Normalize() mutated input: %v", v)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
		wantErr  error
	}{
		{
			name:     "identical vectors",
			a:        []float32{1, 0, 0},
			b:        []float32{1, 0, 0},
			expected: 1.0,
		},
		{
			name:     "orthogonal vectors",
			a:        []float32{1, 0, 0},
			b:        []float32{0, 1, 0},
			expected: 0.0,
		},
		{
			name:     "opposite vectors",
			a:        []float32{1, 0, 0},
			b:        []float32{-1, 0, 0},
			expected: -1.0,
		},
		{
			name:     "magnitude independent",
			a:        []float32{2, 0},
			b:        []float32{9, 0},
			expected: 1.0,
		},
		{
			name:    "different dimensions",
			a:       []float32{1, 0},
			b:       []float32{1, 0, 0},
			wantErr: ErrDimensionMismatch,
		},
		{
			name:    "zero vector",
			a:       []float32{0, 0, 0},
			b:       []float32{1, 0, 0},
			wantErr: ErrDegenerateVector,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CosineSimilarity(tt.a, tt.b)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CosineSimilarity() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CosineSimilarity() error = %v", err)
			}
			if math.Abs(float64(result-tt.expected)) > 1e-6 {
				t.Errorf("CosineSimilarity() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestCosineSimilaritySelf(t *testing.T) {
	vectors := [][]float32{
		{1, 2, 3},
		{-0.5, 0.25},
		{0.001, 0.002, 0.003, 0.004},
	}

	for _, v := range vectors {
		result, err := CosineSimilarity(v, v)
		if err != nil {
			t.Fatalf("CosineSimilarity(v, v) error = %v", err)
		}
		if math.Abs(float64(result)-1.0) > 1e-5 {
			t.Errorf("CosineSimilarity(v, v) = %v, want ~1.0 for %v", result, v)
		}
	}
}

func TestCosineSimilaritySymmetry(t *testing.T) {
	a := []float32{0.3, -1.2, 4.5}
	b := []float32{2.1, 0.7, -0.9}

	ab, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity(a, b) error = %v", err)
	}
	ba, err := CosineSimilarity(b, a)
	if err != nil {
		t.Fatalf("CosineSimilarity(b, a) error = %v", err)
	}
	if ab != ba {
		t.Errorf("CosineSimilarity not symmetric: %v != %v", ab, ba)
	}
}
