// Package qdrant provides a remote vector index backed by a qdrant
// server over gRPC. Each namespace maps to its own qdrant collection;
// the empty namespace maps to a configured default collection.
package qdrant

import (
	"context"
	"fmt"
	"log/slog"

	qdrantclient "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/index"
)

// DefaultAddr is the qdrant gRPC endpoint used when none is configured.
const DefaultAddr = "localhost:6334"

// Config holds connection settings for a qdrant index.
type Config struct {
	// Addr is the host:port of the qdrant gRPC endpoint.
	Addr string
	// DefaultCollection receives entries written to the empty
	// namespace.
	DefaultCollection string
}

// Index implements index.VectorIndex against a qdrant server.
type Index struct {
	conn              *grpc.ClientConn
	collections       qdrantclient.CollectionsClient
	points            qdrantclient.PointsClient
	defaultCollection string
	logger            *slog.Logger
}

var _ index.VectorIndex = (*Index)(nil)

// Connect dials the qdrant server. The connection is plaintext; qdrant
// deployments requiring TLS sit behind their own gateway in our setups.
func Connect(cfg Config) (*Index, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	defaultCollection := cfg.DefaultCollection
	if defaultCollection == "" {
		defaultCollection = "catalog"
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to qdrant at %s: %w", addr, err)
	}

	return &Index{
		conn:              conn,
		collections:       qdrantclient.NewCollectionsClient(conn),
		points:            qdrantclient.NewPointsClient(conn),
		defaultCollection: defaultCollection,
		logger:            slog.Default().With("component", "qdrant"),
	}, nil
}

// Close closes the gRPC connection.
func (x *Index) Close() error {
	return x.conn.Close()
}

// collectionName maps a namespace to its qdrant collection.
func (x *Index) collectionName(namespace string) string {
	if namespace == "" {
		return x.defaultCollection
	}
	return namespace
}

func (x *Index) collectionExists(ctx context.Context, name string) (bool, error) {
	resp, err := x.collections.List(ctx, &qdrantclient.ListCollectionsRequest{})
	if err != nil {
		return false, fmt.Errorf("failed to list collections: %w", err)
	}
	for _, col := range resp.GetCollections() {
		if col.GetName() == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection creates the collection if it doesn't exist yet.
func (x *Index) ensureCollection(ctx context.Context, name string, dimension int) error {
	exists, err := x.collectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = x.collections.Create(ctx, &qdrantclient.CreateCollection{
		CollectionName: name,
		VectorsConfig: &qdrantclient.VectorsConfig{
			Config: &qdrantclient.VectorsConfig_Params{
				Params: &qdrantclient.VectorParams{
					Size:     uint64(dimension),
					Distance: qdrantclient.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}

	x.logger.Info("collection created", "collection", name, "dimension", dimension)
	return nil
}

// Upsert writes entries into the namespace's collection, creating the
// collection on first write. Point IDs are derived deterministically
// from entry IDs, so re-upserting an entry replaces its prior point.
func (x *Index) Upsert(ctx context.Context, namespace string, entries []*core.IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}

	name := x.collectionName(namespace)
	if err := x.ensureCollection(ctx, name, len(entries[0].Vector)); err != nil {
		return err
	}

	points := make([]*qdrantclient.PointStruct, len(entries))
	for i, entry := range entries {
		points[i] = &qdrantclient.PointStruct{
			Id: pointID(entry.Id),
			Vectors: &qdrantclient.Vectors{
				VectorsOptions: &qdrantclient.Vectors_Vector{
					Vector: &qdrantclient.Vector{Data: entry.Vector},
				},
			},
			Payload: entryPayload(entry),
		}
	}

	wait := true
	_, err := x.points.Upsert(ctx, &qdrantclient.UpsertPoints{
		CollectionName: name,
		Points:         points,
		Wait:           &wait,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points to %s: %w", name, err)
	}
	return nil
}

// Count returns the exact number of points in the namespace's
// collection. A collection that doesn't exist counts as zero.
func (x *Index) Count(ctx context.Context, namespace string) (int, error) {
	name := x.collectionName(namespace)

	exists, err := x.collectionExists(ctx, name)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	exact := true
	resp, err := x.points.Count(ctx, &qdrantclient.CountPoints{
		CollectionName: name,
		Exact:          &exact,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count collection %s: %w", name, err)
	}
	return int(resp.GetResult().GetCount()), nil
}

// DeleteAll drops the namespace's collection entirely.
func (x *Index) DeleteAll(ctx context.Context, namespace string) error {
	name := x.collectionName(namespace)

	exists, err := x.collectionExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	_, err = x.collections.Delete(ctx, &qdrantclient.DeleteCollection{
		CollectionName: name,
	})
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}
	return nil
}

// ListNamespaces returns the names of all collections on the server.
func (x *Index) ListNamespaces(ctx context.Context) ([]string, error) {
	resp, err := x.collections.List(ctx, &qdrantclient.ListCollectionsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	names := make([]string, 0, len(resp.GetCollections()))
	for _, col := range resp.GetCollections() {
		names = append(names, col.GetName())
	}
	return names, nil
}

// FindSimilar searches the namespace's collection for the nearest
// points. Returned entries carry payload metadata only; vectors stay
// server-side.
func (x *Index) FindSimilar(ctx context.Context, namespace string, vector []float32, limit int) ([]*core.ScoredEntry, error) {
	name := x.collectionName(namespace)

	resp, err := x.points.Search(ctx, &qdrantclient.SearchPoints{
		CollectionName: name,
		Vector:         vector,
		Limit:          uint64(limit),
		WithPayload: &qdrantclient.WithPayloadSelector{
			SelectorOptions: &qdrantclient.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search collection %s: %w", name, err)
	}

	results := make([]*core.ScoredEntry, 0, len(resp.GetResult()))
	for _, point := range resp.GetResult() {
		results = append(results, &core.ScoredEntry{
			Entry: entryFromPayload(point.GetPayload()),
			Score: point.GetScore(),
		})
	}
	return results, nil
}
