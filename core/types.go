package core

// Document represents a stored item: a caller-supplied dense embedding
// plus descriptive fields, keyed by ID
type Document struct {
	ID       string
	Title    string
	Metadata map[string]string
	Vector   []float32
}

// SearchResult represents a single search result: a document paired with
// its cosine similarity against the query (higher = more similar).
// Genuine cosine values lie in [-1, 1]; scores are not clamped, so float
// rounding may push a result past either bound by a small epsilon.
type SearchResult struct {
	Document Document
	Score    float32
}
