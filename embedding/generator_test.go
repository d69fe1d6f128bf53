package embedding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"testing"
	"time"

	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *Config {
	return &Config{
		BatchSize:      2,
		MaxRetries:     3,
		RetryDelay:     5 * time.Millisecond,
		BatchPause:     0,
		ReportInterval: 100,
	}
}

func TestNewGenerator_RequiresEmbedder(t *testing.T) {
	_, err := NewGenerator(nil, nil, io.Discard)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestGenerate_Empty(t *testing.T) {
	gen, err := NewGenerator(mock.NewMockEmbedder(4), fastConfig(), io.Discard)
	require.NoError(t, err)

	vectors, err := gen.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
}

func TestGenerate_OrderPreservedAcrossBatches(t *testing.T) {
	embedder := mock.NewMockEmbedder(4)
	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	texts := []string{"a", "b", "c", "d", "e"} // 3 batches of size 2
	vectors, err := gen.Generate(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vectors, 5)

	// Mock embeddings are deterministic per text, so positional
	// alignment can be checked by re-embedding individually.
	for i, text := range texts {
		expected, embErr := embedder.EmbedText(context.Background(), text)
		require.NoError(t, embErr)
		assert.Equal(t, expected, vectors[i], "vector %d out of order", i)
	}
}

func TestGenerate_BatchSizeRespected(t *testing.T) {
	var batchSizes []int
	embedder := mock.NewMockEmbedder(4)
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		batchSizes = append(batchSizes, len(texts))
		out := make([][]float32, len(texts))
		for i := range out {
			out[i] = []float32{0.1, 0.2, 0.3, 0.4}
		}
		return out, nil
	}

	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, batchSizes)
}

func TestGenerate_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	embedder := mock.NewMockEmbedder(2)
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		calls++
		if calls == 1 {
			return nil, ai.Transient(errors.New("rate limited"))
		}
		out := make([][]float32, len(texts))
		for i := range out {
			out[i] = []float32{0.1, 0.2}
		}
		return out, nil
	}

	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	vectors, err := gen.Generate(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, vectors, 2)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, gen.Retries())
}

func TestGenerate_FatalAbortsImmediately(t *testing.T) {
	calls := 0
	fatal := errors.New("invalid api key")
	embedder := mock.NewMockEmbedder(2)
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		calls++
		return nil, fatal
	}

	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), []string{"a", "b"})
	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestGenerate_RetryExhaustionNamesBatch(t *testing.T) {
	embedder := mock.NewMockEmbedder(2)
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		if texts[0] == "c" {
			return nil, ai.Transient(errors.New("timeout"))
		}
		out := make([][]float32, len(texts))
		for i := range out {
			out[i] = []float32{0.1, 0.2}
		}
		return out, nil
	}

	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), []string{"a", "b", "c", "d"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch 2/2")
}

func TestGenerate_ProviderCountMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder(2)
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{0.1, 0.2}}, nil // always one vector
	}

	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, ErrCountMismatch)
}

func TestGenerate_DimensionMismatchDetected(t *testing.T) {
	embedder := mock.NewMockEmbedder(4) // declares 4, returns 2
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range out {
			out[i] = []float32{0.1, 0.2}
		}
		return out, nil
	}

	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestGenerate_NonFiniteDetected(t *testing.T) {
	embedder := mock.NewMockEmbedder(2)
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range out {
			out[i] = []float32{float32(math.NaN()), 0.2}
		}
		return out, nil
	}

	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, ErrNonFiniteValue)
}

func TestGenerate_RoundTripCounts(t *testing.T) {
	embedder := mock.NewMockEmbedder(8)
	gen, err := NewGenerator(embedder, fastConfig(), io.Discard)
	require.NoError(t, err)

	texts := make([]string, 7)
	for i := range texts {
		texts[i] = fmt.Sprintf("text %d", i)
	}

	vectors, err := gen.Generate(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vectors, len(texts))
	for _, v := range vectors {
		assert.Len(t, v, embedder.Dimension())
	}
}
