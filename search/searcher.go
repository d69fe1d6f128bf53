package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/embedding"
	"github.com/poiesic/indexit/index"
)

// DefaultMaxHits limits results when the caller passes a non-positive
// limit.
const DefaultMaxHits = 5

// Searcher embeds queries and looks up the nearest entries in one
// provider's namespace. The provider must be the one that populated
// the namespace, otherwise query and entry vectors live in different
// spaces and scores are meaningless.
type Searcher struct {
	idx       index.VectorIndex
	embedder  ai.Embedder
	namespace string
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a searcher over the provider's namespace.
func NewSearcher(idx index.VectorIndex, provider ai.EmbeddingProvider, opts ...Option) (*Searcher, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	s := &Searcher{
		idx:       idx,
		embedder:  provider.Embedder(),
		namespace: provider.Namespace(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar embeds the query and returns up to maxHits entries from
// the namespace, ordered by similarity score descending.
func (s *Searcher) FindSimilar(ctx context.Context, query string, maxHits int) ([]*core.ScoredEntry, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if maxHits <= 0 {
		maxHits = DefaultMaxHits
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	// Unit-normalize so dot-product backends score on the same scale
	// as cosine backends.
	vector = embedding.NormalizeVector(vector)

	results, err := s.idx.FindSimilar(ctx, s.namespace, vector, maxHits)
	if err != nil {
		s.logger.Error("error querying index", "namespace", s.namespace, "err", err)
		return nil, err
	}

	s.logger.Debug("search complete",
		"namespace", s.namespace,
		"query", query,
		"hits", len(results))
	return results, nil
}
