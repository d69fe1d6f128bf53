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


package catalog

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/poiesic/indexit/core"
)

const (
	// maxDescriptionChars caps the description excerpt in searchable text.
	maxDescriptionChars = 500

	// maxWarrantyChars caps the stored warranty text and its excerpt.
	maxWarrantyChars = 200

	// maxKeyFeatures caps how many key-feature phrases are embedded.
	maxKeyFeatures = 5
)

// Normalizer turns raw catalog records into canonical Documents.
// Records missing a name or a parseable price are dropped, which is a
// validity gate rather than an error.
type Normalizer struct {
	logger *slog.Logger
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) NormalizerOption {
	return func(n *Normalizer) {
		if logger == nil {
			logger = slog.Default()
		}
		n.logger = logger
	}
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{logger: slog.Default()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts one raw record into a Document. Returns ok=false
// when the record fails the validity gate (missing name or unparseable
// price). Given identical input, the produced Document is byte-for-byte
// identical: SearchableText is a pure function of the record and its
// extracted specs.
func (n *Normalizer) Normalize(rec *RawRecord) (*core.Document, bool) {
	price, priceOK := ParsePriceRange(rec.Price)
	if rec.Name == "" || !priceOK {
		return nil, false
	}

	specs := ExtractSpecs(rec.Specifications)

	doc := &core.Document{
		Id:             documentID(rec),
		Name:           rec.Name,
		Category:       rec.Category,
		Brand:          rec.Brand,
		Source:         rec.Source,
		URL:            rec.URL,
		Image:          rec.Image,
		PriceMin:       price.Min,
		PriceMax:       price.Max,
		Specs:          specs,
		Warranty:       excerpt(rec.Warranty, maxWarrantyChars),
		SearchableText: buildSearchableText(rec, price, specs),
	}

	return doc, true
}

// NormalizeAll normalizes a batch of records, preserving input order.
// Returns the emitted documents and the number of dropped records.
func (n *Normalizer) NormalizeAll(recs []*RawRecord) ([]*core.Document, int) {
	docs := make([]*core.Document, 0, len(recs))
	dropped := 0
	for _, rec := range recs {
		doc, ok := n.Normalize(rec)
		if !ok {
			dropped++
			n.logger.Debug("dropped record", "row", rec.Index, "name", rec.Name)
			continue
		}
		docs = append(docs, doc)
	}
	if dropped > 0 {
		n.logger.Info("normalization complete", "documents", len(docs), "dropped", dropped)
	}
	return docs, dropped
}

// documentID derives a stable id from the record's stock-keeping unit,
// falling back to the record's position in the source file.
func documentID(rec *RawRecord) string {
	if rec.SKU != "" {
		return "prod_" + rec.SKU
	}
	return fmt.Sprintf("prod_%d", rec.Index)
}

// buildSearchableText assembles the embedding input as a fixed, ordered
// concatenation of labeled segments. Absent segments are omitted; the
// order and labels are frozen because the output drives reproducibility
// of search results.
func buildSearchableText(rec *RawRecord, price PriceRange, specs core.Specs) string {
	var parts []string

	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}

	add("Product", rec.Name)
	add("Category", rec.Category)
	add("Brand", rec.Brand)
	add("Source", rec.Source)

	if price.Min == price.Max {
		parts = append(parts, fmt.Sprintf("Price: %s Taka", groupThousands(price.Min)))
	} else {
		parts = append(parts, fmt.Sprintf("Price Range: %s to %s Taka",
			groupThousands(price.Min), groupThousands(price.Max)))
	}

	add("Description", excerpt(rec.Description, maxDescriptionChars))

	if len(rec.KeyFeatures) > 0 {
		features := rec.KeyFeatures
		if len(features) > maxKeyFeatures {
			features = features[:maxKeyFeatures]
		}
		add("Key Features", strings.Join(features, " | "))
	}

	add("Processor", specs.Processor)
	add("RAM", specs.RAM)
	add("Graphics", specs.Graphics)
	add("Storage", specs.Storage)

	add("Warranty", excerpt(rec.Warranty, maxWarrantyChars))

	return strings.Join(parts, "\n")
}

// excerpt truncates s to at most n runes.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// groupThousands formats n with comma grouping ("93900" -> "93,900").
// Hand-rolled so the output is locale-independent and byte-stable.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
