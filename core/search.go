package core

import (
	"fmt"
	"sort"
)

// SearchIndex ranks the documents of a store against query vectors by
// cosine similarity using a brute-force exact scan.
type SearchIndex struct {
	store *DocumentStore
}

// NewSearchIndex creates a search index over the given store
func NewSearchIndex(store *DocumentStore) *SearchIndex {
	return &SearchIndex{store: store}
}

// Search scores every stored document against query and returns the topN
// highest-scoring results sorted descending by score. topN <= 0 yields no
// results; topN larger than the store returns all documents, sorted.
// Documents that tie on score keep store iteration order, which is
// unspecified.
//
// A document whose vector cannot be compared against query (dimension
// mismatch or zero magnitude on either side) fails the whole search with
// the offending document ID wrapped in the error; no partial result is
// returned.
func (idx *SearchIndex) Search(query []float32, topN int) ([]SearchResult, error) {
	if topN <= 0 {
		return nil, nil
	}

	docs := idx.store.All()
	results := make([]SearchResult, 0, len(docs))

	for _, doc := range docs {
		score, err := CosineSimilarity(query, doc.Vector)
		if err != nil {
			return nil, fmt.Errorf("score document %s: %w", doc.ID, err)
		}
		results = append(results, SearchResult{Document: doc, Score: score})
	}

	// Sort by similarity (descending)
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topN > len(results) {
		topN = len(results)
	}

	return results[:topN], nil
}
