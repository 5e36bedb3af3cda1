package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the assistant.
type Config struct {
	Documents DocumentsConfig `yaml:"documents"`
	Chunker   ChunkerConfig   `yaml:"chunker"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Index     IndexConfig     `yaml:"index"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Cache     CacheConfig     `yaml:"cache"`
	Contact   ContactConfig   `yaml:"contact"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DocumentsConfig describes where source documents live.
type DocumentsConfig struct {
	Folder   string   `yaml:"folder"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// ChunkerConfig configures how document text is split into chunks.
type ChunkerConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "openai", "ollama", "mock"
	Model     string `yaml:"model"`       // e.g., "text-embedding-3-small"
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable for API key
	BaseURL   string `yaml:"base_url"`
	Dimension int    `yaml:"dimension"`
	BatchSize int    `yaml:"batch_size"`
}

// IndexConfig holds the persisted vector index location.
type IndexConfig struct {
	Path string `yaml:"path"`
}

// RetrievalConfig holds retrieval tuning values. MinContextChars is the
// threshold below which retrieved context is considered too thin to answer
// with; both values are carried over from the production deployment and
// have no documented derivation.
type RetrievalConfig struct {
	TopK            int `yaml:"top_k"`
	MinContextChars int `yaml:"min_context_chars"`
}

// CacheConfig holds the response cache backing store settings. TTLs are in
// seconds: intent answers are evergreen, retrieval answers medium-lived,
// generic fallbacks short-lived.
type CacheConfig struct {
	Addr           string `yaml:"addr"`
	Password       string `yaml:"password"`
	DB             int    `yaml:"db"`
	Namespace      string `yaml:"namespace"`
	ConnectTimeout int    `yaml:"connect_timeout"`
	TTLIntent      int    `yaml:"ttl_intent"`
	TTLRetrieval   int    `yaml:"ttl_retrieval"`
	TTLGeneric     int    `yaml:"ttl_generic"`
}

// ContactConfig is the club contact data interpolated into answer
// templates. It is configuration, not logic.
type ContactConfig struct {
	ClubName     string `yaml:"club_name"`
	WhatsApp     string `yaml:"whatsapp"`
	Email        string `yaml:"email"`
	Location     string `yaml:"location"`
	WhatsAppLink string `yaml:"whatsapp_link"`
	MailLink     string `yaml:"mail_link"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Documents: DocumentsConfig{
			Folder:   "pdfs",
			Includes: []string{"**/*.pdf"},
			Excludes: []string{},
		},
		Chunker: ChunkerConfig{
			Size:    1000,
			Overlap: 200,
		},
		Embedding: EmbeddingConfig{
			Provider:  "ollama",
			Model:     "nomic-embed-text",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 768,
			BatchSize: 100,
		},
		Index: IndexConfig{
			Path: "club_vectorstore.db",
		},
		Retrieval: RetrievalConfig{
			TopK:            2,
			MinContextChars: 50,
		},
		Cache: CacheConfig{
			Addr:           "localhost:6379",
			DB:             0,
			Namespace:      "chatbot_response:",
			ConnectTimeout: 2,
			TTLIntent:      7200,
			TTLRetrieval:   3600,
			TTLGeneric:     1800,
		},
		Contact: ContactConfig{
			ClubName:     "Club de Natación Montería Natación Master",
			WhatsApp:     "+57 3144809367",
			Email:        "monteriamaster@gmail.com",
			Location:     "Piscina de la Villaolímpica, Montería",
			WhatsAppLink: "https://wa.me/573144809367?text=Hola,%20quiero%20inscribirme%20en%20el%20Club%20de%20Natación%20MNM",
			MailLink:     "mailto:monteriamaster@gmail.com?subject=Inscripción%20Club%20de%20Natación%20MNM",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for natalia.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "natalia.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".natalia", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
