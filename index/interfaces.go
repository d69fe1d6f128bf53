package index

import (
	"context"

	"github.com/poiesic/indexit/core"
)

// VectorIndex is a namespace-partitioned vector store.
// Implementations must be safe for concurrent use by callers operating
// on different namespaces.
type VectorIndex interface {
	// Upsert writes entries into a namespace, keyed by entry ID.
	// An entry with an existing ID is fully replaced, never merged.
	Upsert(ctx context.Context, namespace string, entries []*core.IndexEntry) error

	// Count returns the number of entries in a namespace.
	// A namespace that has never been written to counts as zero.
	Count(ctx context.Context, namespace string) (int, error)

	// DeleteAll removes every entry from a namespace.
	DeleteAll(ctx context.Context, namespace string) error

	// ListNamespaces returns the namespaces that currently hold entries.
	ListNamespaces(ctx context.Context) ([]string, error)

	// FindSimilar returns the entries in a namespace most similar to
	// the given vector, ordered by similarity score (highest first),
	// up to limit results.
	FindSimilar(ctx context.Context, namespace string, vector []float32, limit int) ([]*core.ScoredEntry, error)

	// Close closes the index and releases resources.
	Close() error
}
