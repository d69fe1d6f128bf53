package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *Document {
	return &Document{
		Id:             "prod_LAP-001",
		Name:           "ProBook 450 G10",
		Category:       "Laptop",
		Brand:          "HP",
		PriceMin:       93900,
		PriceMax:       93900,
		SearchableText: "Product: ProBook 450 G10",
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	require.NoError(t, ValidateDocument(validDocument()))
}

func TestValidateDocument_Nil(t *testing.T) {
	err := ValidateDocument(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestValidateDocument_EmptyID(t *testing.T) {
	doc := validDocument()
	doc.Id = ""
	err := ValidateDocument(doc)
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestValidateDocument_EmptyName(t *testing.T) {
	doc := validDocument()
	doc.Name = ""
	err := ValidateDocument(doc)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestValidateDocument_MissingPrice(t *testing.T) {
	doc := validDocument()
	doc.PriceMin = 0
	doc.PriceMax = 0
	err := ValidateDocument(doc)
	assert.ErrorIs(t, err, ErrNoPrice)
}

func TestValidateDocument_InvertedPriceRange(t *testing.T) {
	doc := validDocument()
	doc.PriceMin = 28100
	doc.PriceMax = 24499
	err := ValidateDocument(doc)
	assert.ErrorIs(t, err, ErrPriceRangeInverted)
}

func TestValidateDocument_EmptySearchableText(t *testing.T) {
	doc := validDocument()
	doc.SearchableText = ""
	err := ValidateDocument(doc)
	assert.ErrorIs(t, err, ErrEmptySearchableText)
}

func TestValidateEntry_Valid(t *testing.T) {
	entry := &IndexEntry{
		Id:     "prod_LAP-001",
		Vector: []float32{0.1, 0.2, 0.3},
	}
	require.NoError(t, ValidateEntry(entry))
}

func TestValidateEntry_EmptyVector(t *testing.T) {
	entry := &IndexEntry{Id: "prod_LAP-001"}
	err := ValidateEntry(entry)
	assert.ErrorIs(t, err, ErrEmptyVector)
}
