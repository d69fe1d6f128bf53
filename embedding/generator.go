// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package embedding

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/indexit/ai"
)

const (
	// DefaultBatchSize is the number of texts sent per provider call.
	DefaultBatchSize = 100
)

// Config holds configuration for the batch generator.
type Config struct {
	// BatchSize is the number of texts to embed in each provider call
	BatchSize int

	// MaxRetries is the maximum number of attempts per batch call
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// BatchPause is an optional delay inserted between successful
	// batches to respect provider rate limits. Not part of the retry
	// budget.
	BatchPause time.Duration

	// ReportInterval is how often to report progress (number of texts)
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      DefaultBatchSize,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		BatchPause:     100 * time.Millisecond,
		ReportInterval: 100,
	}
}

// Generator turns an ordered sequence of texts into an ordered sequence
// of fixed-dimension vectors through a pluggable embedder, with
// batching, bounded retry, and post-generation validation.
//
// Batches are processed strictly in order because the final
// vector-to-document alignment is positional; there is no
// partial-success continuation. Exhausting retries on any batch fails
// the whole run.
type Generator struct {
	embedder ai.Embedder
	config   *Config
	progress io.Writer
	logger   *slog.Logger
	retries  int
}

// NewGenerator creates a new batch generator.
// progress: where to write progress output (typically os.Stderr);
// io.Discard silences it.
func NewGenerator(embedder ai.Embedder, config *Config, progress io.Writer) (*Generator, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Generator{
		embedder: embedder,
		config:   config,
		progress: progress,
		logger:   slog.Default().With("component", "embedding-generator"),
	}, nil
}

// Generate embeds all texts, preserving order. The result always
// satisfies: one vector per text, every vector of the embedder's
// declared dimension, no non-finite values. Any violation or exhausted
// retry aborts with an error carrying the failing batch index.
func (g *Generator) Generate(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	batchSize := g.config.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	totalBatches := (len(texts) + batchSize - 1) / batchSize
	g.logger.Info("generating embeddings",
		"texts", len(texts), "batchSize", batchSize, "batches", totalBatches)

	tracker := NewProgressTracker(g.progress, len(texts), g.config.ReportInterval)
	tracker.Start()

	g.retries = 0
	vectors := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]
		batchIndex := start / batchSize

		var batchVectors [][]float32
		attempts := 0
		err := RetryWithBackoff(ctx, func() error {
			attempts++
			var err error
			batchVectors, err = g.embedder.EmbedTexts(ctx, batch)
			return err
		}, g.config.MaxRetries, g.config.RetryDelay)
		g.retries += attempts - 1

		if err != nil {
			return nil, fmt.Errorf("embedding batch %d/%d failed after %d attempts: %w",
				batchIndex+1, totalBatches, g.config.MaxRetries, err)
		}

		if len(batchVectors) != len(batch) {
			return nil, fmt.Errorf("embedding batch %d/%d: %w: expected %d, got %d",
				batchIndex+1, totalBatches, ErrCountMismatch, len(batch), len(batchVectors))
		}

		vectors = append(vectors, batchVectors...)
		tracker.Update(len(vectors))

		// Rate-limit pause between batches, skipped after the last one.
		if end < len(texts) && g.config.BatchPause > 0 {
			timer := time.NewTimer(g.config.BatchPause)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}

	tracker.Finish()

	if err := ValidateVectors(vectors, len(texts), g.embedder.Dimension()); err != nil {
		return nil, err
	}

	elapsed := tracker.Elapsed()
	g.logger.Info("embedding generation complete",
		"vectors", len(vectors), "dimension", g.embedder.Dimension(),
		"elapsed", elapsed.Round(time.Millisecond))

	return vectors, nil
}

// Retries reports how many batch attempts were repeated during the
// most recent Generate call.
func (g *Generator) Retries() int {
	return g.retries
}
