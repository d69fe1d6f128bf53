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


// Package embedding generates dense vector embeddings for document
// texts in fixed-size batches.
//
// The Generator partitions its input into contiguous chunks (default
// 100 texts), calls the provider once per chunk, and retries transient
// failures with exponential backoff. Order is preserved end to end:
// vector i always corresponds to text i, which is what lets the
// upserter zip vectors with documents by position.
//
// A completed run is validated before anyone consumes it: the vector
// count must equal the text count, every vector must have the
// provider's declared dimension, and no component may be NaN or Inf.
//
// Generated embedding sets can be persisted as flat little-endian
// float32 artifacts with a JSON metadata sidecar (SaveArtifact /
// LoadArtifact), so the upload stage can run separately and resume
// without re-embedding.
package embedding
