package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/minivec/core"
)

// Export writes a snapshot of every document in the store to a JSON array
// at path. Missing parent directories are created and an existing file is
// overwritten. The store is not locked for the duration of the snapshot,
// so a concurrent writer may be partially reflected in the output.
func Export(ctx context.Context, store *core.DocumentStore, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	docs := store.All()
	records := make([]documentRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, toRecord(doc))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: create directory %s: %v", ErrIO, dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}

	return nil
}
