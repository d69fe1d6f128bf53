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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	indexit "github.com/poiesic/indexit"
	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/ai/openai"
	"github.com/poiesic/indexit/catalog"
	"github.com/poiesic/indexit/config"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/embedding"
	"github.com/poiesic/indexit/index"
	"github.com/poiesic/indexit/pipeline"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "indexit",
		Usage:  "Catalog embedding indexing pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "normalize",
				Usage:  "Normalize raw catalog CSV into canonical documents JSON",
				Action: normalizeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "csv",
						Usage:   "Path to the raw catalog CSV (defaults to CATALOG_CSV)",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output path for documents JSON (defaults to DOCUMENTS_PATH)",
					},
				},
			},
			{
				Name:   "embed",
				Usage:  "Generate embedding artifacts for all enabled providers",
				Action: embedCommand,
				Flags: append(generatorFlags(),
					&cli.StringFlag{
						Name:  "docs",
						Usage: "Path to documents JSON (defaults to DOCUMENTS_PATH)",
					},
					&cli.StringFlag{
						Name:  "out-dir",
						Usage: "Directory for embedding artifacts (defaults to ARTIFACT_DIR)",
					},
				),
			},
			{
				Name:   "upload",
				Usage:  "Upload a persisted embedding artifact into the index",
				Action: uploadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "provider",
						Aliases:  []string{"p"},
						Usage:    "Provider whose artifact to upload",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "docs",
						Usage: "Path to documents JSON (defaults to DOCUMENTS_PATH)",
					},
					&cli.StringFlag{
						Name:  "artifact-dir",
						Usage: "Directory holding embedding artifacts (defaults to ARTIFACT_DIR)",
					},
				},
			},
			{
				Name:   "run",
				Usage:  "Run the full pipeline: normalize, embed, upsert, verify",
				Action: runCommand,
				Flags: append(generatorFlags(),
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Normalize this CSV first instead of loading documents JSON",
					},
					&cli.StringFlag{
						Name:  "docs",
						Usage: "Path to documents JSON (defaults to DOCUMENTS_PATH)",
					},
					&cli.IntFlag{
						Name:  "parallel",
						Usage: "Run providers concurrently on a pool of this size (0 = sequential)",
					},
				),
			},
			{
				Name:   "stats",
				Usage:  "Report entry counts per index namespace",
				Action: statsCommand,
			},
			{
				Name:   "clear",
				Usage:  "Delete all entries from all namespaces (destructive)",
				Action: clearCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "confirm",
						Usage: fmt.Sprintf("Confirmation token; must be exactly %q", index.ConfirmToken),
					},
				},
			},
			{
				Name:   "query",
				Usage:  "Search a provider's namespace with a free-text query",
				Action: queryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "provider",
						Aliases:  []string{"p"},
						Usage:    "Provider whose namespace to search",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 5,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func generatorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "Number of texts to embed per provider call",
			Value: embedding.DefaultBatchSize,
		},
		&cli.IntFlag{
			Name:  "max-retries",
			Usage: "Maximum retry attempts per batch",
			Value: 3,
		},
		&cli.DurationFlag{
			Name:  "retry-delay",
			Usage: "Base delay for exponential backoff",
			Value: 1 * time.Second,
		},
		&cli.DurationFlag{
			Name:  "batch-pause",
			Usage: "Pause between successful batches",
			Value: 100 * time.Millisecond,
		},
	}
}

func generatorConfig(c *cli.Context) *embedding.Config {
	cfg := embedding.DefaultConfig()
	cfg.BatchSize = c.Int("batch-size")
	cfg.MaxRetries = c.Int("max-retries")
	cfg.RetryDelay = c.Duration("retry-delay")
	cfg.BatchPause = c.Duration("batch-pause")
	return cfg
}

func normalizeCommand(c *cli.Context) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	csvPath := firstNonEmpty(c.String("csv"), settings.CatalogCSV)
	outPath := firstNonEmpty(c.String("out"), settings.DocumentsPath)

	records, err := catalog.LoadRecords(csvPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	normalizer := catalog.NewNormalizer()
	docs, dropped := normalizer.NormalizeAll(records)

	if err := catalog.SaveDocuments(outPath, docs); err != nil {
		return fmt.Errorf("failed to save documents: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Records:   %d\n", len(records))
	fmt.Fprintf(os.Stderr, "Documents: %d\n", len(docs))
	fmt.Fprintf(os.Stderr, "Dropped:   %d\n", dropped)
	fmt.Fprintf(os.Stderr, "Written:   %s\n", outPath)
	return nil
}

func embedCommand(c *cli.Context) error {
	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	docsPath := firstNonEmpty(c.String("docs"), settings.DocumentsPath)
	outDir := firstNonEmpty(c.String("out-dir"), settings.ArtifactDir)

	docs, err := catalog.LoadDocuments(docsPath)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}
	texts := catalog.SearchableTexts(docs)
	checksum := core.Checksum(texts)

	providers, err := buildProviders(settings)
	if err != nil {
		return err
	}
	defer closeAll(providers)

	for _, provider := range providers {
		fmt.Fprintf(os.Stderr, "Provider: %s (%d documents)\n", provider.Name(), len(docs))

		generator, err := embedding.NewGenerator(provider.Embedder(), generatorConfig(c), os.Stderr)
		if err != nil {
			return err
		}

		vectors, err := generator.Generate(ctx, texts)
		if err != nil {
			return fmt.Errorf("provider %s: %w", provider.Name(), err)
		}

		path := artifactPath(outDir, provider.Name())
		meta := embedding.ArtifactMeta{
			Model:        provider.Name(),
			Dimension:    provider.Embedder().Dimension(),
			Count:        len(vectors),
			DocsChecksum: checksum,
		}
		if reporter, ok := provider.Embedder().(ai.UsageReporter); ok {
			meta.TotalTokens = reporter.TotalTokens()
		}

		if err := embedding.SaveArtifact(path, vectors, meta); err != nil {
			return fmt.Errorf("provider %s: %w", provider.Name(), err)
		}
		fmt.Fprintf(os.Stderr, "Artifact: %s\n\n", path)
	}
	return nil
}

func uploadCommand(c *cli.Context) error {
	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	providerName := c.String("provider")
	ps, ok := settings.EnabledProviders()[providerName]
	if !ok {
		return fmt.Errorf("no enabled provider named %q", providerName)
	}
	namespace := firstNonEmpty(ps.Namespace, providerName)

	docsPath := firstNonEmpty(c.String("docs"), settings.DocumentsPath)
	artifactDir := firstNonEmpty(c.String("artifact-dir"), settings.ArtifactDir)

	docs, err := catalog.LoadDocuments(docsPath)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	vectors, meta, err := embedding.LoadArtifact(artifactPath(artifactDir, providerName))
	if err != nil {
		return fmt.Errorf("failed to load artifact: %w", err)
	}

	// Refuse to combine stale embeddings with a revised document set.
	checksum := core.Checksum(catalog.SearchableTexts(docs))
	if err := embedding.VerifyArtifact(meta, checksum, len(docs)); err != nil {
		return err
	}

	idx, err := indexit.NewIndexer(settings)
	if err != nil {
		return err
	}
	defer idx.Close()

	upserter, err := idx.NewUpserter()
	if err != nil {
		return err
	}

	written, err := upserter.UpsertDocuments(ctx, namespace, docs, vectors)
	if err != nil {
		return err
	}
	if err := upserter.Verify(ctx, namespace, len(docs)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Upserted %d entries into namespace %q\n", written, namespace)
	return nil
}

func runCommand(c *cli.Context) error {
	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	var (
		docs    []*core.Document
		dropped int
	)
	if csvPath := c.String("csv"); csvPath != "" {
		records, err := catalog.LoadRecords(csvPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		docs, dropped = catalog.NewNormalizer().NormalizeAll(records)
		if err := catalog.SaveDocuments(settings.DocumentsPath, docs); err != nil {
			return fmt.Errorf("failed to save documents: %w", err)
		}
	} else {
		docsPath := firstNonEmpty(c.String("docs"), settings.DocumentsPath)
		docs, err = catalog.LoadDocuments(docsPath)
		if err != nil {
			return fmt.Errorf("failed to load documents: %w", err)
		}
	}

	idx, err := indexit.NewIndexer(settings)
	if err != nil {
		return err
	}
	defer idx.Close()

	opts := []pipeline.Option{
		pipeline.WithGeneratorConfig(generatorConfig(c)),
		pipeline.WithProgressWriter(os.Stderr),
	}
	if size := c.Int("parallel"); size > 0 {
		opts = append(opts, pipeline.WithParallelProviders(size))
	}

	orchestrator, err := idx.NewOrchestrator(opts...)
	if err != nil {
		return err
	}

	report, err := orchestrator.Run(ctx, docs)
	if report != nil {
		report.Dropped = dropped
		printReport(report)
	}
	return err
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	idx, err := indexit.NewIndexer(settings)
	if err != nil {
		return err
	}
	defer idx.Close()

	namespaces, err := idx.Index().ListNamespaces(ctx)
	if err != nil {
		return err
	}
	sort.Strings(namespaces)

	if len(namespaces) == 0 {
		fmt.Println("Index is empty")
		return nil
	}

	total := 0
	for _, ns := range namespaces {
		count, err := idx.Index().Count(ctx, ns)
		if err != nil {
			return err
		}
		total += count
		fmt.Printf("%-24s %d\n", ns, count)
	}
	fmt.Printf("%-24s %d\n", "total", total)
	return nil
}

func clearCommand(c *cli.Context) error {
	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	idx, err := indexit.NewIndexer(settings)
	if err != nil {
		return err
	}
	defer idx.Close()

	clearer, err := idx.NewClearer()
	if err != nil {
		return err
	}

	result, err := clearer.Clear(ctx, c.String("confirm"))
	if err != nil {
		return err
	}

	namespaces := make([]string, 0, len(result.Counts))
	for ns := range result.Counts {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	for _, ns := range namespaces {
		fmt.Printf("%-24s %d\n", ns, result.Counts[ns])
	}

	if result.Aborted {
		fmt.Fprintf(os.Stderr, "Aborted: pass --confirm %s to delete all entries\n", index.ConfirmToken)
		return nil
	}

	fmt.Fprintf(os.Stderr, "Deleted %d entries from %d namespaces\n", result.Deleted, len(result.Counts))
	return nil
}

func queryCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() == 0 {
		return fmt.Errorf("query text is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	settings, err := config.Load()
	if err != nil {
		return err
	}

	idx, err := indexit.NewIndexer(settings)
	if err != nil {
		return err
	}
	defer idx.Close()

	searcher, err := idx.NewSearcher(c.String("provider"))
	if err != nil {
		return err
	}

	results, err := searcher.FindSimilar(ctx, query, c.Int("limit"))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No results")
		return nil
	}

	for i, result := range results {
		meta := result.Entry.Metadata
		fmt.Printf("%d. [%.3f] %s\n", i+1, result.Score, meta.Name)
		if meta.PriceMin > 0 {
			if meta.PriceMin == meta.PriceMax {
				fmt.Printf("   Price: %d Taka\n", meta.PriceMin)
			} else {
				fmt.Printf("   Price: %d to %d Taka\n", meta.PriceMin, meta.PriceMax)
			}
		}
		if meta.Brand != "" || meta.Category != "" {
			fmt.Printf("   %s %s\n", meta.Brand, meta.Category)
		}
		if meta.URL != "" {
			fmt.Printf("   %s\n", meta.URL)
		}
	}
	return nil
}

func printReport(report *pipeline.RunReport) {
	fmt.Fprintf(os.Stderr, "\nDocuments: %d", report.Documents)
	if report.Dropped > 0 {
		fmt.Fprintf(os.Stderr, " (%d records dropped)", report.Dropped)
	}
	fmt.Fprintln(os.Stderr)

	for _, pr := range report.Providers {
		fmt.Fprintf(os.Stderr, "  %s (namespace %q): vectors=%d batches=%d retries=%d upserted=%d",
			pr.Provider, pr.Namespace, pr.Vectors, pr.Batches, pr.Retries, pr.Upserted)
		if pr.TotalTokens > 0 {
			fmt.Fprintf(os.Stderr, " tokens=%d", pr.TotalTokens)
		}
		fmt.Fprintf(os.Stderr, " elapsed=%s\n", pr.Elapsed.Round(time.Millisecond))
	}
	fmt.Fprintf(os.Stderr, "Total upserted: %d (elapsed %s)\n",
		report.TotalUpserted(), report.Elapsed.Round(time.Millisecond))
}

// buildProviders constructs a provider per enabled settings entry,
// without opening the index.
func buildProviders(settings *config.Settings) ([]ai.EmbeddingProvider, error) {
	enabled := settings.EnabledProviders()
	if len(enabled) == 0 {
		return nil, fmt.Errorf("no providers enabled; set OPENAI_ENABLED or LOCAL_ENABLED")
	}

	names := make([]string, 0, len(enabled))
	for name := range enabled {
		names = append(names, name)
	}
	sort.Strings(names)

	var providers []ai.EmbeddingProvider
	for _, name := range names {
		ps := enabled[name]
		provider, err := openai.NewProvider(ai.NewConfig(
			ai.WithName(name),
			ai.WithHost(ps.Host),
			ai.WithModel(ps.Model),
			ai.WithAPIKey(ps.APIKey),
			ai.WithDimension(ps.Dimension),
			ai.WithNamespace(firstNonEmpty(ps.Namespace, name)),
		))
		if err != nil {
			closeAll(providers)
			return nil, fmt.Errorf("provider %s: %w", name, err)
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

func closeAll(providers []ai.EmbeddingProvider) {
	for _, p := range providers {
		p.Close()
	}
}

func artifactPath(dir, providerName string) string {
	return filepath.Join(dir, fmt.Sprintf("embeddings_%s.vec", providerName))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
