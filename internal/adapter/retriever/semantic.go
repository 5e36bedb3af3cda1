package retriever

import (
	"fmt"

	"natalia/internal/domain"
	"natalia/internal/port"
)

// SemanticRetriever answers queries by cosine similarity against the
// vector index. Chunk text and provenance travel in the vector metadata,
// so results need no secondary lookup.
type SemanticRetriever struct {
	vectorStore port.VectorStore
	embedder    port.Embedder
}

func NewSemanticRetriever(vectorStore port.VectorStore, embedder port.Embedder) *SemanticRetriever {
	return &SemanticRetriever{
		vectorStore: vectorStore,
		embedder:    embedder,
	}
}

func (r *SemanticRetriever) Search(query string, k int) ([]domain.ScoredChunk, error) {
	if r.vectorStore == nil {
		return nil, nil
	}
	if r.embedder == nil {
		return nil, fmt.Errorf("semantic search not available: embeddings not configured")
	}

	embeddings, err := r.embedder.Embed([]string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding returned empty result")
	}

	results, err := r.vectorStore.Search(embeddings[0], k)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	chunks := make([]domain.ScoredChunk, 0, len(results))
	for _, result := range results {
		chunks = append(chunks, domain.ScoredChunk{
			Chunk: domain.Chunk{
				ID:         result.ID,
				Text:       result.Metadata["text"],
				SourceFile: result.Metadata["source"],
				DocType:    domain.DocType(result.Metadata["doc_type"]),
			},
			Score: result.Score,
		})
	}

	return chunks, nil
}
