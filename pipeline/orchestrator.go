package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/embedding"
	"github.com/poiesic/indexit/index"
)

// Orchestrator runs the generate-upsert-verify pipeline for a set of
// embedding providers against one shared vector index.
type Orchestrator struct {
	idx         index.VectorIndex
	providers   []ai.EmbeddingProvider
	genConfig   *embedding.Config
	upsertBatch int
	poolSize    int
	progress    io.Writer
	logger      *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithGeneratorConfig overrides the embedding generator configuration.
func WithGeneratorConfig(config *embedding.Config) Option {
	return func(o *Orchestrator) error {
		if config != nil {
			o.genConfig = config
		}
		return nil
	}
}

// WithUpsertBatchSize overrides the index write batch size.
func WithUpsertBatchSize(size int) Option {
	return func(o *Orchestrator) error {
		if size > 0 {
			o.upsertBatch = size
		}
		return nil
	}
}

// WithParallelProviders runs providers concurrently on a worker pool
// of the given size. Provider runs share no mutable state, so this is
// safe; batch order within each provider stays strict.
func WithParallelProviders(poolSize int) Option {
	return func(o *Orchestrator) error {
		if poolSize < 1 {
			poolSize = 1
		}
		o.poolSize = poolSize
		return nil
	}
}

// WithProgressWriter sets where embedding progress is written.
// Default is io.Discard.
func WithProgressWriter(w io.Writer) Option {
	return func(o *Orchestrator) error {
		if w != nil {
			o.progress = w
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates an orchestrator over the given index and
// providers.
func NewOrchestrator(idx index.VectorIndex, providers []ai.EmbeddingProvider, opts ...Option) (*Orchestrator, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}

	o := &Orchestrator{
		idx:         idx,
		providers:   providers,
		genConfig:   embedding.DefaultConfig(),
		upsertBatch: index.DefaultBatchSize,
		progress:    io.Discard,
		logger:      slog.Default().With("component", "orchestrator"),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Run executes the pipeline for every provider. Sequential by default:
// the first provider failure stops the run without attempting later
// providers. In parallel mode all providers are attempted and their
// failures are joined. Namespaces committed before a failure are left
// in place; re-running is idempotent.
func (o *Orchestrator) Run(ctx context.Context, docs []*core.Document) (*RunReport, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	start := time.Now()
	report := &RunReport{
		Documents: len(docs),
		Providers: make([]*ProviderReport, 0, len(o.providers)),
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.SearchableText
	}

	var err error
	if o.poolSize > 0 {
		err = o.runParallel(ctx, docs, texts, report)
	} else {
		err = o.runSequential(ctx, docs, texts, report)
	}

	report.Elapsed = time.Since(start)
	if err != nil {
		return report, err
	}

	o.logger.Info("run complete",
		"documents", report.Documents,
		"providers", len(report.Providers),
		"upserted", report.TotalUpserted(),
		"elapsed", report.Elapsed.Round(time.Millisecond))
	return report, nil
}

func (o *Orchestrator) runSequential(ctx context.Context, docs []*core.Document, texts []string, report *RunReport) error {
	for _, provider := range o.providers {
		pr, err := o.runProvider(ctx, provider, docs, texts)
		if pr != nil {
			report.Providers = append(report.Providers, pr)
		}
		if err != nil {
			return fmt.Errorf("provider %s: %w", provider.Name(), err)
		}
	}
	return nil
}

func (o *Orchestrator) runParallel(ctx context.Context, docs []*core.Document, texts []string, report *RunReport) error {
	pool, err := ants.NewPool(o.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		reports = make([]*ProviderReport, len(o.providers))
		errs    = make([]error, len(o.providers))
	)

	for i, provider := range o.providers {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			pr, runErr := o.runProvider(ctx, provider, docs, texts)
			mu.Lock()
			reports[i] = pr
			if runErr != nil {
				errs[i] = fmt.Errorf("provider %s: %w", provider.Name(), runErr)
			}
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for _, pr := range reports {
		if pr != nil {
			report.Providers = append(report.Providers, pr)
		}
	}
	return errors.Join(errs...)
}

// runProvider executes one provider's pipeline: generate, upsert,
// verify. Entries are written only after the full vector set passes
// validation inside the generator.
func (o *Orchestrator) runProvider(ctx context.Context, provider ai.EmbeddingProvider, docs []*core.Document, texts []string) (*ProviderReport, error) {
	start := time.Now()
	logger := o.logger.With("provider", provider.Name(), "namespace", provider.Namespace())
	logger.Info("provider run starting", "documents", len(docs))

	pr := &ProviderReport{
		Provider:  provider.Name(),
		Namespace: provider.Namespace(),
	}

	generator, err := embedding.NewGenerator(provider.Embedder(), o.genConfig, o.progress)
	if err != nil {
		return pr, err
	}

	vectors, err := generator.Generate(ctx, texts)
	pr.Retries = generator.Retries()
	if err != nil {
		return pr, fmt.Errorf("embedding generation: %w", err)
	}
	pr.Vectors = len(vectors)

	batchSize := o.genConfig.BatchSize
	if batchSize <= 0 {
		batchSize = embedding.DefaultBatchSize
	}
	pr.Batches = (len(texts) + batchSize - 1) / batchSize

	if reporter, ok := provider.Embedder().(ai.UsageReporter); ok {
		pr.TotalTokens = reporter.TotalTokens()
	}

	upserter, err := index.NewUpserter(o.idx,
		index.WithBatchSize(o.upsertBatch),
		index.WithLogger(logger))
	if err != nil {
		return pr, err
	}

	written, err := upserter.UpsertDocuments(ctx, provider.Namespace(), docs, vectors)
	pr.Upserted = written
	if err != nil {
		return pr, fmt.Errorf("upsert: %w", err)
	}

	if err := upserter.Verify(ctx, provider.Namespace(), len(docs)); err != nil {
		return pr, err
	}

	pr.Elapsed = time.Since(start)
	logger.Info("provider run complete",
		"vectors", pr.Vectors,
		"upserted", pr.Upserted,
		"retries", pr.Retries,
		"elapsed", pr.Elapsed.Round(time.Millisecond))
	return pr, nil
}
