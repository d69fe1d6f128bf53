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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyID indicates the Id field is empty.
	ErrEmptyID = errors.New("document id cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("document name cannot be empty")

	// ErrNoPrice indicates the document has no parsed price.
	ErrNoPrice = errors.New("document has no price")

	// ErrPriceRangeInverted indicates PriceMin exceeds PriceMax.
	ErrPriceRangeInverted = errors.New("price minimum exceeds price maximum")

	// ErrEmptySearchableText indicates the SearchableText field is empty.
	ErrEmptySearchableText = errors.New("searchable text cannot be empty")

	// ErrInvalidEntry indicates an IndexEntry failed validation.
	ErrInvalidEntry = errors.New("invalid index entry")

	// ErrEmptyVector indicates an IndexEntry has no vector.
	ErrEmptyVector = errors.New("entry vector cannot be empty")
)
