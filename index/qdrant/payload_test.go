package qdrant

import (
	"testing"

	"github.com/poiesic/indexit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointID_Deterministic(t *testing.T) {
	a := pointID("prod_1017")
	b := pointID("prod_1017")
	c := pointID("prod_1018")

	assert.Equal(t, a.GetUuid(), b.GetUuid())
	assert.NotEqual(t, a.GetUuid(), c.GetUuid())
	assert.Len(t, a.GetUuid(), 36)
}

func TestEntryPayload_RoundTrip(t *testing.T) {
	entry := &core.IndexEntry{
		Id:     "prod_42",
		Vector: []float32{0.1, 0.2},
		Metadata: core.EntryMetadata{
			Name:      "ASUS VivoBook 15",
			PriceMin:  52500,
			PriceMax:  54000,
			Category:  "Laptop",
			Brand:     "ASUS",
			Source:    "startech",
			Processor: "Intel Core i5-1235U",
			RAM:       "8GB DDR4",
		},
	}

	payload := entryPayload(entry)
	restored := entryFromPayload(payload)

	assert.Equal(t, entry.Id, restored.Id)
	assert.Equal(t, entry.Metadata, restored.Metadata)
}

func TestEntryPayload_OmitsEmptyFields(t *testing.T) {
	entry := &core.IndexEntry{
		Id:       "prod_1",
		Metadata: core.EntryMetadata{Name: "Mouse"},
	}

	payload := entryPayload(entry)
	require.Contains(t, payload, "id")
	require.Contains(t, payload, "name")
	assert.NotContains(t, payload, "brand")
	assert.NotContains(t, payload, "price_min")
	assert.NotContains(t, payload, "processor")
}

func TestCollectionName_DefaultForEmptyNamespace(t *testing.T) {
	idx := &Index{defaultCollection: "catalog"}
	assert.Equal(t, "catalog", idx.collectionName(""))
	assert.Equal(t, "openai", idx.collectionName("openai"))
}
