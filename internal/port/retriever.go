package port

import "natalia/internal/domain"

// Retriever defines the interface for searching ingested documents.
type Retriever interface {
	// Search returns up to k chunks relevant to the query, best first.
	// An empty result is not an error.
	Search(query string, k int) ([]domain.ScoredChunk, error)
}
