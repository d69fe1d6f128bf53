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


package index

import "github.com/poiesic/indexit/core"

// Per-field truncation limits for index payloads. Vector stores cap
// payload size, so metadata carries a bounded projection of the
// document rather than the full object.
const (
	maxNameChars      = 200
	maxCategoryChars  = 100
	maxBrandChars     = 50
	maxURLChars       = 200
	maxImageChars     = 200
	maxWarrantyChars  = 150
	maxProcessorChars = 80
	maxGraphicsChars  = 80
	maxRAMChars       = 30
	maxStorageChars   = 30
)

// ProjectMetadata builds the size-bounded metadata payload for a
// document. Empty string fields and zero prices stay zero-valued and
// are omitted from serialized payloads.
func ProjectMetadata(doc *core.Document) core.EntryMetadata {
	return core.EntryMetadata{
		Name:      truncate(doc.Name, maxNameChars),
		PriceMin:  doc.PriceMin,
		PriceMax:  doc.PriceMax,
		Category:  truncate(doc.Category, maxCategoryChars),
		Brand:     truncate(doc.Brand, maxBrandChars),
		Source:    doc.Source,
		URL:       truncate(doc.URL, maxURLChars),
		Image:     truncate(doc.Image, maxImageChars),
		Warranty:  truncate(doc.Warranty, maxWarrantyChars),
		Processor: truncate(doc.Specs.Processor, maxProcessorChars),
		RAM:       truncate(doc.Specs.RAM, maxRAMChars),
		Storage:   truncate(doc.Specs.Storage, maxStorageChars),
		Graphics:  truncate(doc.Specs.Graphics, maxGraphicsChars),
	}
}

// BuildEntry pairs a document with its vector as an index entry.
func BuildEntry(doc *core.Document, vector []float32) *core.IndexEntry {
	return &core.IndexEntry{
		Id:       doc.Id,
		Vector:   vector,
		Metadata: ProjectMetadata(doc),
	}
}

// truncate limits s to max runes. Truncation counts runes, not bytes,
// so multibyte product names are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
