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


// Package index defines the vector index capability and the write-side
// operations built on top of it.
//
// A VectorIndex is partitioned into namespaces: each embedding provider
// writes to exactly one namespace, so providers with different vector
// dimensions can share one index without interfering. Within a
// namespace, entries are keyed by document ID with insert-or-replace
// semantics.
//
// The Upserter zips documents with their vectors by position, projects
// each document into size-bounded metadata, and writes entries in
// fixed-size batches. The Clearer is the only destructive surface: it
// deletes every entry from every namespace, and refuses to do anything
// unless the caller supplies the exact confirmation token.
package index
