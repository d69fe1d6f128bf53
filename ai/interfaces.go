package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails; transient
	// failures (timeouts, rate limits) are reported as TransientError.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the fixed length of vectors this embedder produces.
	Dimension() int
}

// UsageReporter is an optional interface for embedders that track
// token usage across calls. Callers discover it by type assertion.
type UsageReporter interface {
	// TotalTokens returns the cumulative token count consumed so far.
	TotalTokens() int64
}

// EmbeddingProvider is an embedding source with a stable identity.
// Each provider owns one index namespace; two providers may coexist
// against the same document set as long as their namespaces differ.
type EmbeddingProvider interface {
	// Name identifies the provider (e.g. "openai", "huggingface").
	Name() string

	// Namespace is the index partition this provider's vectors live in.
	// The empty string addresses the index's default namespace.
	Namespace() string

	// Embedder returns the provider's embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Close releases resources held by the provider.
	// After Close is called, the provider should not be used.
	Close() error
}
