package port

import "natalia/internal/domain"

type Chunker interface {
	Chunk(sourceFile string, docType domain.DocType, content string) ([]domain.Chunk, error)
}
