package index

import (
	"context"
	"sort"
	"sync"

	"github.com/poiesic/indexit/core"
)

// memIndex is a minimal in-memory VectorIndex for exercising the
// write-side operations without a real backend.
type memIndex struct {
	mu          sync.Mutex
	namespaces  map[string]map[string]*core.IndexEntry
	batchSizes  []int
	upsertErr   error
	deleteCalls int
}

var _ VectorIndex = (*memIndex)(nil)

func newMemIndex() *memIndex {
	return &memIndex{namespaces: make(map[string]map[string]*core.IndexEntry)}
}

func (m *memIndex) Upsert(ctx context.Context, namespace string, entries []*core.IndexEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.batchSizes = append(m.batchSizes, len(entries))
	if m.upsertErr != nil {
		return m.upsertErr
	}

	ns, ok := m.namespaces[namespace]
	if !ok {
		ns = make(map[string]*core.IndexEntry)
		m.namespaces[namespace] = ns
	}
	for _, entry := range entries {
		ns[entry.Id] = entry
	}
	return nil
}

func (m *memIndex) Count(ctx context.Context, namespace string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.namespaces[namespace]), nil
}

func (m *memIndex) DeleteAll(ctx context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	delete(m.namespaces, namespace)
	return nil
}

func (m *memIndex) ListNamespaces(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.namespaces))
	for ns := range m.namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memIndex) FindSimilar(ctx context.Context, namespace string, vector []float32, limit int) ([]*core.ScoredEntry, error) {
	return nil, nil
}

func (m *memIndex) Close() error {
	return nil
}
