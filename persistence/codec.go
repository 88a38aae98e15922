package persistence

import (
	"fmt"

	"github.com/dshills/minivec/core"
)

// documentRecord is the wire shape of a document inside a snapshot file: a
// plain JSON object whose Vector field is an ordinary array of numbers.
// The in-memory core.Document carries no serialization concerns; records
// are converted explicitly at this boundary. The format has no version
// field and is not backward-compatible across field changes.
type documentRecord struct {
	ID       string            `json:"Id"`
	Title    string            `json:"Title"`
	Metadata map[string]string `json:"Metadata"`
	Vector   []float32         `json:"Vector"`
}

func toRecord(doc core.Document) documentRecord {
	return documentRecord{
		ID:       doc.ID,
		Title:    doc.Title,
		Metadata: doc.Metadata,
		Vector:   doc.Vector,
	}
}

// document converts a wire record back to a core document, rejecting
// records that miss required fields or violate store invariants
func (r documentRecord) document() (core.Document, error) {
	doc := core.Document{
		ID:       r.ID,
		Title:    r.Title,
		Metadata: r.Metadata,
		Vector:   r.Vector,
	}
	if err := core.ValidateDocument(doc); err != nil {
		return core.Document{}, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return doc, nil
}
