package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// Document is the canonical normalized representation of one catalog item.
// It is created once by the normalizer and immutable thereafter; the
// SearchableText field is the sole input to embedding generation.
type Document struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Brand          string `json:"brand"`
	Source         string `json:"source"`
	URL            string `json:"url"`
	Image          string `json:"image"`
	PriceMin       int64  `json:"price_min"`
	PriceMax       int64  `json:"price_max"`
	Specs          Specs  `json:"specs"`
	Warranty       string `json:"warranty"`
	SearchableText string `json:"searchable_text"`
}

// Specs holds structured attributes extracted from a product's
// free-text specification blob. Empty string means absent.
type Specs struct {
	Processor string `json:"processor,omitempty"`
	RAM       string `json:"ram,omitempty"`
	Storage   string `json:"storage,omitempty"`
	Graphics  string `json:"graphics,omitempty"`
}

// IndexEntry is the unit persisted in a vector index namespace.
// Entries are upserted by Id: re-writing an existing Id fully replaces
// the prior vector and metadata.
type IndexEntry struct {
	Id       string
	Vector   []float32
	Metadata EntryMetadata
}

// EntryMetadata is a size-bounded projection of a Document stored
// alongside its vector for query-time filtering and display.
// Zero-valued fields are omitted from index payloads.
type EntryMetadata struct {
	Name      string `json:"name,omitempty"`
	PriceMin  int64  `json:"price_min,omitempty"`
	PriceMax  int64  `json:"price_max,omitempty"`
	Category  string `json:"category,omitempty"`
	Brand     string `json:"brand,omitempty"`
	Source    string `json:"source,omitempty"`
	URL       string `json:"url,omitempty"`
	Image     string `json:"image,omitempty"`
	Warranty  string `json:"warranty,omitempty"`
	Processor string `json:"processor,omitempty"`
	RAM       string `json:"ram,omitempty"`
	Storage   string `json:"storage,omitempty"`
	Graphics  string `json:"graphics,omitempty"`
}

// ScoredEntry is an index entry returned from similarity search.
type ScoredEntry struct {
	Entry *IndexEntry
	Score float32
}

// Checksum computes a deterministic BLAKE2b digest over an ordered
// sequence of texts. Identical document sets produce identical checksums,
// which lets the uploader verify that a persisted embedding artifact
// matches the document set it was generated from.
func Checksum(texts []string) string {
	h, _ := blake2b.New(16, nil)
	for _, text := range texts {
		h.Write([]byte(text))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
