// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package indexit wires the catalog indexing pipeline together: an
// index backend, one or more embedding providers, and the
// orchestration, search, and clear operations over them.
package indexit

import (
	"fmt"
	"log/slog"

	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/ai/openai"
	"github.com/poiesic/indexit/config"
	"github.com/poiesic/indexit/index"
	"github.com/poiesic/indexit/index/badger"
	"github.com/poiesic/indexit/index/qdrant"
	"github.com/poiesic/indexit/pipeline"
	"github.com/poiesic/indexit/search"
)

// Indexer owns the vector index and the configured embedding
// providers, and builds the pipeline components over them.
type Indexer struct {
	idx       index.VectorIndex
	providers []ai.EmbeddingProvider
	logger    *slog.Logger
}

// NewIndexer opens the index backend selected by the settings and
// constructs a provider per enabled provider entry. Provider
// namespaces default to the provider's name when unset.
func NewIndexer(settings *config.Settings) (*Indexer, error) {
	idx, err := openIndex(settings)
	if err != nil {
		return nil, err
	}

	var providers []ai.EmbeddingProvider
	for name, ps := range settings.EnabledProviders() {
		namespace := ps.Namespace
		if namespace == "" {
			namespace = name
		}

		provider, err := openai.NewProvider(ai.NewConfig(
			ai.WithName(name),
			ai.WithHost(ps.Host),
			ai.WithModel(ps.Model),
			ai.WithAPIKey(ps.APIKey),
			ai.WithDimension(ps.Dimension),
			ai.WithNamespace(namespace),
		))
		if err != nil {
			closeProviders(providers)
			idx.Close()
			return nil, fmt.Errorf("provider %s: %w", name, err)
		}
		providers = append(providers, provider)
	}

	return &Indexer{
		idx:       idx,
		providers: providers,
		logger:    slog.Default(),
	}, nil
}

func openIndex(settings *config.Settings) (index.VectorIndex, error) {
	switch settings.IndexBackend {
	case "badger", "":
		return badger.Open(settings.IndexPath)
	case "qdrant":
		return qdrant.Connect(qdrant.Config{
			Addr:              settings.QdrantAddr,
			DefaultCollection: settings.QdrantCollection,
		})
	default:
		return nil, fmt.Errorf("unknown index backend %q", settings.IndexBackend)
	}
}

func closeProviders(providers []ai.EmbeddingProvider) {
	for _, p := range providers {
		p.Close()
	}
}

// Index returns the underlying vector index.
func (x *Indexer) Index() index.VectorIndex {
	return x.idx
}

// Providers returns the configured embedding providers.
func (x *Indexer) Providers() []ai.EmbeddingProvider {
	return x.providers
}

// Provider returns the provider with the given name, or nil.
func (x *Indexer) Provider(name string) ai.EmbeddingProvider {
	for _, p := range x.providers {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// NewOrchestrator builds a pipeline orchestrator over the index and
// all configured providers.
func (x *Indexer) NewOrchestrator(opts ...pipeline.Option) (*pipeline.Orchestrator, error) {
	return pipeline.NewOrchestrator(x.idx, x.providers, opts...)
}

// NewSearcher builds a searcher over the named provider's namespace.
func (x *Indexer) NewSearcher(providerName string, opts ...search.Option) (*search.Searcher, error) {
	provider := x.Provider(providerName)
	if provider == nil {
		return nil, fmt.Errorf("no enabled provider named %q", providerName)
	}
	return search.NewSearcher(x.idx, provider, opts...)
}

// NewClearer builds the destructive clear operation over the index.
func (x *Indexer) NewClearer() (*index.Clearer, error) {
	return index.NewClearer(x.idx, x.logger)
}

// NewUpserter builds an upserter for direct artifact uploads.
func (x *Indexer) NewUpserter(opts ...index.UpserterOption) (*index.Upserter, error) {
	return index.NewUpserter(x.idx, opts...)
}

// Close closes the providers and then the index.
func (x *Indexer) Close() error {
	for _, p := range x.providers {
		if err := p.Close(); err != nil {
			x.logger.Error("error closing provider", "provider", p.Name(), "err", err)
		}
	}
	if err := x.idx.Close(); err != nil {
		x.logger.Error("error closing index", "err", err)
		return err
	}
	return nil
}
