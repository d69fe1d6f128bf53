package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIndex(t *testing.T, idx *memIndex) {
	t.Helper()
	upserter, err := NewUpserter(idx)
	require.NoError(t, err)

	docsA, vectorsA := testDocs(3)
	_, err = upserter.UpsertDocuments(context.Background(), "openai", docsA, vectorsA)
	require.NoError(t, err)

	docsB, vectorsB := testDocs(2)
	_, err = upserter.UpsertDocuments(context.Background(), "gemma", docsB, vectorsB)
	require.NoError(t, err)
}

func TestNewClearer_RequiresIndex(t *testing.T) {
	_, err := NewClearer(nil, nil)
	assert.ErrorIs(t, err, ErrIndexRequired)
}

func TestClear_WithToken(t *testing.T) {
	idx := newMemIndex()
	seedIndex(t, idx)

	clearer, err := NewClearer(idx, nil)
	require.NoError(t, err)

	result, err := clearer.Clear(context.Background(), ConfirmToken)
	require.NoError(t, err)
	assert.False(t, result.Aborted)
	assert.Equal(t, map[string]int{"openai": 3, "gemma": 2}, result.Counts)
	assert.Equal(t, 5, result.Deleted)

	for _, ns := range []string{"openai", "gemma"} {
		count, err := idx.Count(context.Background(), ns)
		require.NoError(t, err)
		assert.Zero(t, count)
	}
}

func TestClear_WrongTokenAborts(t *testing.T) {
	idx := newMemIndex()
	seedIndex(t, idx)

	clearer, err := NewClearer(idx, nil)
	require.NoError(t, err)

	for _, confirm := range []string{"", "delete", "DELETE ", "yes"} {
		result, err := clearer.Clear(context.Background(), confirm)
		require.NoError(t, err)
		assert.True(t, result.Aborted, "confirm=%q", confirm)
		assert.Zero(t, result.Deleted)
	}

	assert.Zero(t, idx.deleteCalls, "aborted clear must not touch the index")
	count, err := idx.Count(context.Background(), "openai")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClear_AbortStillReportsCounts(t *testing.T) {
	idx := newMemIndex()
	seedIndex(t, idx)

	clearer, err := NewClearer(idx, nil)
	require.NoError(t, err)

	result, err := clearer.Clear(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"openai": 3, "gemma": 2}, result.Counts)
}

func TestClear_EmptyIndex(t *testing.T) {
	clearer, err := NewClearer(newMemIndex(), nil)
	require.NoError(t, err)

	result, err := clearer.Clear(context.Background(), ConfirmToken)
	require.NoError(t, err)
	assert.False(t, result.Aborted)
	assert.Empty(t, result.Counts)
	assert.Zero(t, result.Deleted)
}
