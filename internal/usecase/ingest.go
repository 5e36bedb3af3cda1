package usecase

import (
	"fmt"
	"log"
	"os"

	"natalia/config"
	"natalia/internal/port"
)

// Ingestor builds the vector index from the club's PDF folder.
type Ingestor struct {
	loader    port.Loader
	embedder  port.Embedder
	batchSize int
}

func NewIngestor(loader port.Loader, embedder port.Embedder, batchSize int) *Ingestor {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Ingestor{
		loader:    loader,
		embedder:  embedder,
		batchSize: batchSize,
	}
}

// Build loads, embeds and stores every chunk under folder. progress may be
// nil; when set it receives (done, total) after each embedded batch.
// Returns the number of chunks indexed.
func (i *Ingestor) Build(folder string, vs port.VectorStore, progress func(done, total int)) (int, error) {
	chunks, err := i.loader.Load(folder)
	if err != nil {
		return 0, fmt.Errorf("failed to load documents: %w", err)
	}
	if len(chunks) == 0 {
		return 0, nil
	}

	done := 0
	for start := 0; start < len(chunks); start += i.batchSize {
		end := start + i.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for j, c := range batch {
			texts[j] = c.Text
		}

		embeddings, err := i.embedder.Embed(texts)
		if err != nil {
			return done, fmt.Errorf("embedding batch failed: %w", err)
		}
		if len(embeddings) != len(batch) {
			return done, fmt.Errorf("embedder returned %d vectors for %d texts", len(embeddings), len(batch))
		}

		items := make([]port.VectorItem, len(batch))
		for j, c := range batch {
			items[j] = port.VectorItem{
				ID:     c.ID,
				Vector: embeddings[j],
				Metadata: map[string]string{
					"text":     c.Text,
					"source":   c.SourceFile,
					"doc_type": string(c.DocType),
				},
			}
		}

		if err := vs.Upsert(items); err != nil {
			return done, fmt.Errorf("failed to store vectors: %w", err)
		}

		done += len(batch)
		if progress != nil {
			progress(done, len(chunks))
		}
	}

	return done, nil
}

// LoadOrBuild returns the vector store backing retrieval. An existing index
// file is opened as is; otherwise the document folder is ingested. When no
// documents exist the returned store is nil and retrieval stays disabled.
func LoadOrBuild(cfg *config.Config, ingestor *Ingestor, openStore func(path string) (port.VectorStore, error)) (port.VectorStore, error) {
	if cfg.Index.Path != "" {
		if _, err := os.Stat(cfg.Index.Path); err == nil {
			return openStore(cfg.Index.Path)
		}
	}

	vs, err := openStore(cfg.Index.Path)
	if err != nil {
		return nil, err
	}

	n, err := ingestor.Build(cfg.Documents.Folder, vs, nil)
	if err != nil {
		vs.Close()
		return nil, err
	}
	if n == 0 {
		vs.Close()
		if cfg.Index.Path != "" {
			os.Remove(cfg.Index.Path)
		}
		log.Printf("warning: no documents found in %s, retrieval disabled", cfg.Documents.Folder)
		return nil, nil
	}

	return vs, nil
}
