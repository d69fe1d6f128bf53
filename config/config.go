// Package config loads pipeline settings and provider credentials from
// the environment, with optional .env file support for local
// development.
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be
// parsed into the settings struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

var dotenvLoaded sync.Once

// ProviderSettings configures one embedding provider. Prefixed env
// vars select per-provider values, e.g. OPENAI_API_KEY and
// LOCAL_HOST.
type ProviderSettings struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Host      string `env:"HOST" envDefault:"http://localhost:11434/v1"`
	Model     string `env:"MODEL" envDefault:"embeddinggemma"`
	APIKey    string `env:"API_KEY"`
	Dimension int    `env:"DIMENSION" envDefault:"384"`
	Namespace string `env:"NAMESPACE"`
}

// Settings holds the full pipeline configuration.
type Settings struct {
	// Catalog artifacts.
	CatalogCSV    string `env:"CATALOG_CSV" envDefault:"data/products.csv"`
	DocumentsPath string `env:"DOCUMENTS_PATH" envDefault:"data/documents.json"`
	ArtifactDir   string `env:"ARTIFACT_DIR" envDefault:"data/embeddings"`

	// Index backend: "badger" (local) or "qdrant" (remote).
	IndexBackend     string `env:"INDEX_BACKEND" envDefault:"badger"`
	IndexPath        string `env:"INDEX_PATH" envDefault:"data/index"`
	QdrantAddr       string `env:"QDRANT_ADDR" envDefault:"localhost:6334"`
	QdrantCollection string `env:"QDRANT_COLLECTION" envDefault:"catalog"`

	// Providers. At least one must be enabled for embed/run commands.
	OpenAI ProviderSettings `envPrefix:"OPENAI_"`
	Local  ProviderSettings `envPrefix:"LOCAL_"`
}

// Load reads a .env file if present, then parses the environment into
// Settings. The .env file never overrides variables already set in the
// process environment.
func Load() (*Settings, error) {
	dotenvLoaded.Do(func() {
		// The .env file is optional; a missing file is not an error.
		_ = godotenv.Load()
	})

	settings := &Settings{}
	if err := env.Parse(settings); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	return settings, nil
}

// EnabledProviders returns the provider settings flagged enabled,
// paired with their names, in a fixed order.
func (s *Settings) EnabledProviders() map[string]ProviderSettings {
	enabled := make(map[string]ProviderSettings)
	if s.OpenAI.Enabled {
		enabled["openai"] = s.OpenAI
	}
	if s.Local.Enabled {
		enabled["local"] = s.Local
	}
	return enabled
}
