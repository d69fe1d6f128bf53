package index

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// ConfirmToken is the exact string a caller must supply to authorize
// a destructive clear. Anything else aborts without mutation.
const ConfirmToken = "DELETE"

// ClearResult reports the outcome of a clear operation. When Aborted
// is true no entries were touched; Counts still holds the per-namespace
// entry counts observed at the time.
type ClearResult struct {
	Aborted bool
	Counts  map[string]int
	Deleted int
}

// Clearer deletes all entries from all namespaces of an index.
type Clearer struct {
	index  VectorIndex
	logger *slog.Logger
}

// NewClearer creates a Clearer over the given index.
func NewClearer(idx VectorIndex, logger *slog.Logger) (*Clearer, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Clearer{
		index:  idx,
		logger: logger.With("component", "clearer"),
	}, nil
}

// Clear enumerates all namespaces, records their counts, and deletes
// every entry from each. The deletion only proceeds when confirm equals
// ConfirmToken exactly; otherwise the result is marked Aborted and
// nothing is mutated. An aborted clear is a normal outcome, not an
// error.
func (c *Clearer) Clear(ctx context.Context, confirm string) (*ClearResult, error) {
	namespaces, err := c.index.ListNamespaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	sort.Strings(namespaces)

	result := &ClearResult{Counts: make(map[string]int, len(namespaces))}
	for _, ns := range namespaces {
		count, err := c.index.Count(ctx, ns)
		if err != nil {
			return nil, fmt.Errorf("failed to count namespace %q: %w", ns, err)
		}
		result.Counts[ns] = count
	}

	if confirm != ConfirmToken {
		result.Aborted = true
		c.logger.Warn("clear aborted: confirmation token mismatch")
		return result, nil
	}

	for _, ns := range namespaces {
		if err := c.index.DeleteAll(ctx, ns); err != nil {
			return result, fmt.Errorf("failed to clear namespace %q: %w", ns, err)
		}
		result.Deleted += result.Counts[ns]
		c.logger.Info("namespace cleared", "namespace", ns, "entries", result.Counts[ns])
	}

	return result, nil
}
