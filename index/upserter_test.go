package index

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/poiesic/indexit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocs(n int) ([]*core.Document, [][]float32) {
	docs := make([]*core.Document, n)
	vectors := make([][]float32, n)
	for i := range docs {
		docs[i] = &core.Document{
			Id:   fmt.Sprintf("prod_%d", i),
			Name: fmt.Sprintf("Product %d", i),
		}
		vectors[i] = []float32{float32(i), 1.0}
	}
	return docs, vectors
}

func TestNewUpserter_RequiresIndex(t *testing.T) {
	_, err := NewUpserter(nil)
	assert.ErrorIs(t, err, ErrIndexRequired)
}

func TestUpsertDocuments_WritesAll(t *testing.T) {
	idx := newMemIndex()
	upserter, err := NewUpserter(idx)
	require.NoError(t, err)

	docs, vectors := testDocs(5)
	written, err := upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	require.NoError(t, err)
	assert.Equal(t, 5, written)

	count, err := idx.Count(context.Background(), "openai")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestUpsertDocuments_BatchSizeRespected(t *testing.T) {
	idx := newMemIndex()
	upserter, err := NewUpserter(idx, WithBatchSize(2))
	require.NoError(t, err)

	docs, vectors := testDocs(5)
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, idx.batchSizes)
}

func TestUpsertDocuments_CountMismatch(t *testing.T) {
	upserter, err := NewUpserter(newMemIndex())
	require.NoError(t, err)

	docs, vectors := testDocs(3)
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docs, vectors[:2])
	assert.ErrorIs(t, err, ErrCountMismatch)
}

func TestUpsertDocuments_RejectsEmptyVector(t *testing.T) {
	upserter, err := NewUpserter(newMemIndex())
	require.NoError(t, err)

	docs, vectors := testDocs(2)
	vectors[1] = nil
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	assert.ErrorIs(t, err, core.ErrEmptyVector)
}

func TestUpsertDocuments_Idempotent(t *testing.T) {
	idx := newMemIndex()
	upserter, err := NewUpserter(idx)
	require.NoError(t, err)

	docs, vectors := testDocs(3)
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	require.NoError(t, err)
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	require.NoError(t, err)

	count, err := idx.Count(context.Background(), "openai")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "re-upserting the same ids must not grow the namespace")
}

func TestUpsertDocuments_ReplacesByID(t *testing.T) {
	idx := newMemIndex()
	upserter, err := NewUpserter(idx)
	require.NoError(t, err)

	docs, vectors := testDocs(1)
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	require.NoError(t, err)

	docs[0].Name = "Renamed"
	vectors[0] = []float32{9.0, 9.0}
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	require.NoError(t, err)

	entry := idx.namespaces["openai"]["prod_0"]
	require.NotNil(t, entry)
	assert.Equal(t, "Renamed", entry.Metadata.Name)
	assert.Equal(t, []float32{9.0, 9.0}, entry.Vector)
}

func TestUpsertDocuments_NamespaceIsolation(t *testing.T) {
	idx := newMemIndex()
	upserter, err := NewUpserter(idx)
	require.NoError(t, err)

	docsA, vectorsA := testDocs(4)
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docsA, vectorsA)
	require.NoError(t, err)

	docsB, vectorsB := testDocs(2)
	_, err = upserter.UpsertDocuments(context.Background(), "gemma", docsB, vectorsB)
	require.NoError(t, err)

	countA, _ := idx.Count(context.Background(), "openai")
	countB, _ := idx.Count(context.Background(), "gemma")
	assert.Equal(t, 4, countA)
	assert.Equal(t, 2, countB)
}

func TestUpsertDocuments_BackendErrorNamesBatch(t *testing.T) {
	idx := newMemIndex()
	idx.upsertErr = errors.New("connection refused")
	upserter, err := NewUpserter(idx, WithBatchSize(2))
	require.NoError(t, err)

	docs, vectors := testDocs(3)
	written, err := upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch 1/2")
	assert.Zero(t, written)
}

func TestVerify(t *testing.T) {
	idx := newMemIndex()
	upserter, err := NewUpserter(idx)
	require.NoError(t, err)

	docs, vectors := testDocs(3)
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docs, vectors)
	require.NoError(t, err)

	require.NoError(t, upserter.Verify(context.Background(), "openai", 3))
	assert.ErrorIs(t, upserter.Verify(context.Background(), "openai", 4), ErrVerificationFailed)
}
