package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"natalia/config"
	"natalia/internal/adapter/cache"
	"natalia/internal/adapter/chunker"
	"natalia/internal/adapter/embedding"
	"natalia/internal/adapter/fs"
	"natalia/internal/adapter/loader"
	"natalia/internal/adapter/store"
	"natalia/internal/port"
	"natalia/internal/usecase"
)

func newEmbedder(cfg *config.Config) (port.Embedder, error) {
	switch cfg.Embedding.Provider {
	case "openai":
		return embedding.NewOpenAIEmbedder(cfg.Embedding.APIKeyEnv, cfg.Embedding.Model)
	case "ollama":
		return embedding.NewOllamaEmbedder(cfg.Embedding.Model, cfg.Embedding.BaseURL)
	case "mock":
		return embedding.NewMockEmbedder(cfg.Embedding.Dimension), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Embedding.Provider)
	}
}

func newLoader(cfg *config.Config) port.Loader {
	walker := fs.NewWalker(cfg.Documents.Includes, cfg.Documents.Excludes)
	chk := chunker.NewRecursiveChunker(cfg.Chunker.Size, cfg.Chunker.Overlap)
	return loader.NewPDFLoader(walker, chk)
}

// storeOpener returns the factory LoadOrBuild uses. An empty index path
// means an in-memory index rebuilt on every run.
func storeOpener(dimension int) func(path string) (port.VectorStore, error) {
	return func(path string) (port.VectorStore, error) {
		if path == "" {
			return store.NewMemoryVectorStore(dimension), nil
		}
		return store.OpenBoltVectorStore(path, dimension)
	}
}

func newCache(cfg *config.Config) port.ResponseCache {
	if cfg.Cache.Addr == "" {
		return cache.NewNoopCache()
	}
	return cache.NewRedisCache(cache.Options{
		Addr:           cfg.Cache.Addr,
		Password:       cfg.Cache.Password,
		DB:             cfg.Cache.DB,
		Namespace:      cfg.Cache.Namespace,
		ConnectTimeout: time.Duration(cfg.Cache.ConnectTimeout) * time.Second,
	})
}

// resolvePaths anchors the relative document and index paths at the root
// directory so the commands behave the same from any working directory.
func resolvePaths(cfg *config.Config, rootDir string) {
	if cfg.Documents.Folder != "" && !filepath.IsAbs(cfg.Documents.Folder) {
		cfg.Documents.Folder = filepath.Join(rootDir, cfg.Documents.Folder)
	}
	if cfg.Index.Path != "" && !filepath.IsAbs(cfg.Index.Path) {
		cfg.Index.Path = filepath.Join(rootDir, cfg.Index.Path)
	}
}

func newIngestor(cfg *config.Config, embedder port.Embedder) *usecase.Ingestor {
	return usecase.NewIngestor(newLoader(cfg), embedder, cfg.Embedding.BatchSize)
}
