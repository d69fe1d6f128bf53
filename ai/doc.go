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


// Package ai provides abstractions for the embedding services used by
// the indexing pipeline.
//
// The package defines two interfaces:
//
//   - Embedder: generates fixed-dimension vector embeddings from text
//   - EmbeddingProvider: an Embedder with a stable identity (name and
//     index namespace)
//
// Multiple providers may run against the same document set; namespace
// isolation in the vector index keeps their vectors apart, so
// cross-provider dimensions need not match.
//
// # Error classification
//
// Implementations distinguish retryable from fatal failures by wrapping
// retryable ones in TransientError. The batch generator retries only
// transient failures; everything else aborts the current provider's run
// immediately.
//
// # Implementation Packages
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles
//
// Public constructors (openai.NewProvider, openai.NewEmbedder) return
// interface types to enforce abstraction; mock constructors return
// concrete types so tests can inject behavior and make assertions.
package ai
