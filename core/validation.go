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


package core

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Name must not be empty
//   - PriceMin and PriceMax must both be set, with PriceMin <= PriceMax
//   - SearchableText must not be empty
//
// NOT validated:
//   - Specs (all attributes are optional)
//   - Category/Brand/Source/URL/Image (empty string is the canonical
//     form for absent values)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyID)
	}

	if doc.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyName)
	}

	if doc.PriceMin <= 0 || doc.PriceMax <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrNoPrice)
	}

	if doc.PriceMin > doc.PriceMax {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrPriceRangeInverted)
	}

	if doc.SearchableText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptySearchableText)
	}

	return nil
}

// ValidateEntry validates an IndexEntry before it is written to a namespace.
func ValidateEntry(entry *IndexEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyID)
	}

	if len(entry.Vector) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyVector)
	}

	return nil
}
