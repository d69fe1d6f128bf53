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


// Package search provides query-time similarity lookup over an index
// namespace.
//
// The Searcher embeds a free-text query with the same provider that
// populated the namespace and returns the nearest entries with their
// similarity scores. It deliberately stops at nearest-neighbour
// retrieval: ranking beyond vector similarity is out of scope.
package search
