package mock

import "github.com/poiesic/indexit/ai"

// MockProvider is a test double for ai.EmbeddingProvider.
type MockProvider struct {
	name      string
	namespace string
	embedder  ai.Embedder
	closed    bool
}

// NewMockProvider creates a provider with a deterministic mock embedder.
func NewMockProvider(name, namespace string, dimension int) *MockProvider {
	return &MockProvider{
		name:      name,
		namespace: namespace,
		embedder:  NewMockEmbedder(dimension),
	}
}

// NewMockProviderWithEmbedder creates a provider around an arbitrary
// embedder, for tests that need custom embedder behavior.
func NewMockProviderWithEmbedder(name, namespace string, embedder ai.Embedder) *MockProvider {
	return &MockProvider{
		name:      name,
		namespace: namespace,
		embedder:  embedder,
	}
}

// Name identifies the provider.
func (p *MockProvider) Name() string {
	return p.name
}

// Namespace is the index partition this provider writes to.
func (p *MockProvider) Namespace() string {
	return p.namespace
}

// Embedder returns the mock embedding service.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// GetMockEmbedder returns the concrete mock for test assertions and
// behavior injection. Returns nil when the provider wraps a custom
// embedder.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	m, _ := p.embedder.(*MockEmbedder)
	return m
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}
