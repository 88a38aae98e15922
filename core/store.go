package core

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shardCount must be a power of two so shard selection reduces to a mask
const shardCount = 32

// DocumentStore is a concurrent keyed collection of documents. Keys are
// spread across fixed shards, each guarded by its own lock, so writers on
// unrelated IDs do not serialize against each other.
type DocumentStore struct {
	shards [shardCount]storeShard
}

type storeShard struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewDocumentStore creates an empty document store
func NewDocumentStore() *DocumentStore {
	s := &DocumentStore{}
	for i := range s.shards {
		s.shards[i].docs = make(map[string]Document)
	}
	return s
}

func (s *DocumentStore) shard(id string) *storeShard {
	return &s.shards[xxhash.Sum64String(id)&(shardCount-1)]
}

// Upsert inserts doc, or replaces the existing document with the same ID
// wholesale. Fields of the previous version are discarded, never merged.
// Fails with ErrInvalidDocument on an empty ID or a missing, empty, or
// non-finite vector.
func (s *DocumentStore) Upsert(doc Document) error {
	if err := ValidateDocument(doc); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}

	// Copy vector and metadata so later caller mutation cannot reach the
	// stored document.
	doc = cloneDocument(doc)

	sh := s.shard(doc.ID)
	sh.mu.Lock()
	sh.docs[doc.ID] = doc
	sh.mu.Unlock()

	return nil
}

// Delete removes the document with the given ID and reports whether an
// entry was removed. Deleting an absent ID is a no-op, not a fault.
func (s *DocumentStore) Delete(id string) bool {
	sh := s.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, exists := sh.docs[id]; !exists {
		return false
	}
	delete(sh.docs, id)
	return true
}

// Get retrieves a document by ID
func (s *DocumentStore) Get(id string) (Document, bool) {
	sh := s.shard(id)
	sh.mu.RLock()
	doc, exists := sh.docs[id]
	sh.mu.RUnlock()

	if !exists {
		return Document{}, false
	}
	return cloneDocument(doc), true
}

// All returns a snapshot of the current documents. Shards are read one at
// a time: a concurrent upsert or delete may be observed partially, in full,
// or not at all. Iteration order is unspecified and may vary between calls.
func (s *DocumentStore) All() []Document {
	docs := make([]Document, 0, s.Len())
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		for _, doc := range sh.docs {
			docs = append(docs, cloneDocument(doc))
		}
		sh.mu.RUnlock()
	}
	return docs
}

// Len returns the number of stored documents
func (s *DocumentStore) Len() int {
	count := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		count += len(sh.docs)
		sh.mu.RUnlock()
	}
	return count
}

// Clear removes every document from the store
func (s *DocumentStore) Clear() {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		sh.docs = make(map[string]Document)
		sh.mu.Unlock()
	}
}

// cloneDocument deep-copies the vector and metadata so documents crossing
// the store boundary are never aliased between callers
func cloneDocument(doc Document) Document {
	vector := make([]float32, len(doc.Vector))
	copy(vector, doc.Vector)
	doc.Vector = vector

	if doc.Metadata != nil {
		metadata := make(map[string]string, len(doc.Metadata))
		for k, v := range doc.Metadata {
			metadata[k] = v
		}
		doc.Metadata = metadata
	}

	return doc
}
