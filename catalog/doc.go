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


// Package catalog normalizes heterogeneous product records into
// canonical Documents.
//
// The package covers the ingestion side of the indexing pipeline:
//
//   - ParsePriceRange turns noisy localized price strings into a
//     numeric (min, max) pair.
//   - ExtractSpecs pulls structured processor/memory/graphics/storage
//     attributes out of free-text specification blobs using ordered
//     synonym rules.
//   - Normalizer composes both into Documents with a deterministic
//     searchable text blob, dropping records that are missing a name
//     or a parseable price.
//   - ReadRecords/LoadRecords read the upstream CSV export.
//   - SaveDocuments/LoadDocuments persist the canonical document set as
//     the pipeline's intermediate JSON artifact.
//
// Determinism is the central contract: normalizing the same raw record
// twice yields byte-identical searchable text, because that text is the
// sole input to embedding generation.
package catalog
