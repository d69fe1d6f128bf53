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


// Package badger provides a local, namespace-partitioned vector index
// backed by BadgerDB. Entries are serialized with mus and stored under
// namespace-prefixed keys; similarity search is a brute-force scan of
// one namespace, which is adequate for catalog-scale data sets.
package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/index"
)

// Index implements index.VectorIndex over BadgerDB.
type Index struct {
	backend *Backend
}

var _ index.VectorIndex = (*Index)(nil)

// Open opens a local index at the given path.
func Open(path string) (*Index, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &Index{backend: backend}, nil
}

// NewTestIndex creates an in-memory index for testing.
// Caller must close it when done.
func NewTestIndex() (*Index, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return &Index{backend: backend}, nil
}

// Close closes the underlying database.
func (x *Index) Close() error {
	return x.backend.Close()
}

// Upsert writes entries into a namespace, replacing any existing
// entries with the same IDs.
func (x *Index) Upsert(ctx context.Context, namespace string, entries []*core.IndexEntry) error {
	return x.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			key := makeEntryKey(namespace, entry.Id)
			if err := tx.Set(key, index.MarshalEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Count returns the number of entries in a namespace.
func (x *Index) Count(ctx context.Context, namespace string) (int, error) {
	count := 0
	err := x.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeNamespacePrefix(namespace)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// DeleteAll removes every entry from a namespace.
func (x *Index) DeleteAll(ctx context.Context, namespace string) error {
	return x.backend.DropPrefix(makeNamespacePrefix(namespace))
}

// ListNamespaces returns the namespaces that currently hold entries.
func (x *Index) ListNamespaces(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var namespaces []string

	err := x.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			ns, ok := namespaceFromKey(iter.Item().Key())
			if !ok || seen[ns] {
				continue
			}
			seen[ns] = true
			namespaces = append(namespaces, ns)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.Sort(namespaces)
	return namespaces, nil
}

// FindSimilar scans a namespace and returns the entries most similar
// to the given vector, ordered by score descending, up to limit.
// Similarity is the dot product, which equals cosine similarity for
// unit-normalized vectors.
func (x *Index) FindSimilar(ctx context.Context, namespace string, vector []float32, limit int) ([]*core.ScoredEntry, error) {
	var results []*core.ScoredEntry

	err := x.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeNamespacePrefix(namespace)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry *core.IndexEntry
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = index.UnmarshalEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			if entry == nil || len(entry.Vector) == 0 {
				continue
			}

			results = append(results, &core.ScoredEntry{
				Entry: entry,
				Score: dotProduct(vector, entry.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.ScoredEntry) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
