package core

import (
	"errors"
	"math"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{
			name: "valid document",
			doc: Document{
				ID:     "doc1",
				Title:  "first",
				Vector: []float32{1.0, 2.0, 3.0},
			},
			wantErr: false,
		},
		{
			name: "valid without metadata or title",
			doc: Document{
				ID:     "doc1",
				Vector: []float32{0.5},
			},
			wantErr: false,
		},
		{
			name: "empty ID",
			doc: Document{
				ID:     "",
				Vector: []float32{1.0, 2.0, 3.0},
			},
			wantErr: true,
		},
		{
			name: "nil vector",
			doc: Document{
				ID: "doc1",
			},
			wantErr: true,
		},
		{
			name: "empty vector",
			doc: Document{
				ID:     "doc1",
				Vector: []float32{},
			},
			wantErr: true,
		},
		{
			name: "NaN value",
			doc: Document{
				ID:     "doc1",
				Vector: []float32{1.0, float32(math.NaN()), 3.0},
			},
			wantErr: true,
		},
		{
			name: "infinite value",
			doc: Document{
				ID:     "doc1",
				Vector: []float32{1.0, float32(math.Inf(1)), 3.0},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("ValidateDocument() error = %v, want ErrInvalidDocument", err)
			}
		})
	}
}
