package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/minivec/core"
)

// Import reads a snapshot file and returns the documents it contains.
// Fails with ErrIO if the file is missing or unreadable and with
// ErrSerialization if the JSON is malformed or a record misses required
// fields.
func Import(ctx context.Context, path string) ([]core.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}

	var records []documentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrSerialization, path, err)
	}

	docs := make([]core.Document, 0, len(records))
	for i, rec := range records {
		doc, err := rec.document()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// ImportInto upserts every document from the snapshot at path into the
// destination store and returns how many were loaded. Importing the same
// file twice yields the same final state.
func ImportInto(ctx context.Context, store *core.DocumentStore, path string) (int, error) {
	docs, err := Import(ctx, path)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, doc := range docs {
		if err := store.Upsert(doc); err != nil {
			return loaded, fmt.Errorf("load document %s: %w", doc.ID, err)
		}
		loaded++
	}

	return loaded, nil
}
