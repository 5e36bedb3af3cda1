package port

import "natalia/internal/domain"

// Loader ingests documents from a folder into retrieval chunks.
type Loader interface {
	// Load returns the chunks extracted from all recognized files under
	// folder. A missing or empty folder yields an empty slice, not an
	// error; individually unreadable files are skipped with a warning.
	Load(folder string) ([]domain.Chunk, error)
}

type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path string
	Size int64
}
