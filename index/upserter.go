package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/indexit/core"
)

// DefaultBatchSize is the number of entries written per index call.
const DefaultBatchSize = 100

// Upserter writes (document, vector) pairs into one index namespace
// in fixed-size batches. Pairing is positional: vectors[i] belongs to
// docs[i], which is guaranteed by the embedding generator preserving
// input order.
type Upserter struct {
	index     VectorIndex
	batchSize int
	logger    *slog.Logger
}

// UpserterOption configures an Upserter.
type UpserterOption func(*Upserter)

// WithBatchSize overrides the default write batch size.
func WithBatchSize(size int) UpserterOption {
	return func(u *Upserter) {
		if size > 0 {
			u.batchSize = size
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) UpserterOption {
	return func(u *Upserter) {
		u.logger = logger
	}
}

// NewUpserter creates an Upserter writing through the given index.
func NewUpserter(idx VectorIndex, opts ...UpserterOption) (*Upserter, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}

	u := &Upserter{
		index:     idx,
		batchSize: DefaultBatchSize,
		logger:    slog.Default().With("component", "upserter"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// UpsertDocuments projects each document into a size-bounded entry and
// writes all entries to the namespace. Returns the number of entries
// written. On error, earlier batches may already be committed; the
// operation is idempotent and safe to re-run.
func (u *Upserter) UpsertDocuments(ctx context.Context, namespace string, docs []*core.Document, vectors [][]float32) (int, error) {
	if len(docs) != len(vectors) {
		return 0, fmt.Errorf("%w: %d documents, %d vectors",
			ErrCountMismatch, len(docs), len(vectors))
	}

	entries := make([]*core.IndexEntry, len(docs))
	for i, doc := range docs {
		entry := BuildEntry(doc, vectors[i])
		if err := core.ValidateEntry(entry); err != nil {
			return 0, fmt.Errorf("entry %d (%s): %w", i, doc.Id, err)
		}
		entries[i] = entry
	}

	written := 0
	totalBatches := (len(entries) + u.batchSize - 1) / u.batchSize
	for start := 0; start < len(entries); start += u.batchSize {
		end := min(start+u.batchSize, len(entries))
		batch := entries[start:end]
		batchNum := start/u.batchSize + 1

		if err := u.index.Upsert(ctx, namespace, batch); err != nil {
			return written, fmt.Errorf("upsert batch %d/%d: %w", batchNum, totalBatches, err)
		}
		written += len(batch)

		u.logger.Debug("upserted batch",
			"namespace", namespace,
			"batch", batchNum,
			"total_batches", totalBatches,
			"entries", len(batch))
	}

	u.logger.Info("upsert complete", "namespace", namespace, "entries", written)
	return written, nil
}

// Verify checks that the namespace holds exactly the expected number
// of entries. Run after a full upsert to confirm the namespace mirrors
// the document set.
func (u *Upserter) Verify(ctx context.Context, namespace string, expected int) error {
	count, err := u.index.Count(ctx, namespace)
	if err != nil {
		return fmt.Errorf("failed to count namespace %q: %w", namespace, err)
	}
	if count != expected {
		return fmt.Errorf("%w: namespace %q has %d entries, expected %d",
			ErrVerificationFailed, namespace, count, expected)
	}
	return nil
}
