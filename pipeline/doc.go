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


// Package pipeline orchestrates the full indexing run: for each
// configured embedding provider, generate vectors for the document
// set, upsert them into the provider's namespace, and verify that the
// namespace count matches the document count.
//
// Providers run sequentially by default. Their runs are fully
// independent (separate namespaces, separate rate limits), so an
// orchestrator configured with WithParallelProviders runs them
// concurrently on an ants pool instead; per-provider batch order stays
// strict either way.
//
// A provider's failure stops that provider's run immediately and fails
// the whole orchestration, but never rolls back namespaces already
// committed by earlier providers; re-running from the persisted
// document set is idempotent.
package pipeline
