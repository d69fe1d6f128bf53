package qdrant

import (
	"github.com/google/uuid"
	qdrantclient "github.com/qdrant/go-client/qdrant"

	"github.com/poiesic/indexit/core"
)

// pointNamespace seeds deterministic point UUIDs. qdrant point IDs
// must be integers or UUIDs, so document IDs like "prod_1017" are
// hashed into a stable UUID and the original ID is kept in the
// payload.
var pointNamespace = uuid.MustParse("8f2a1f60-33b7-4d0e-9c41-5a70d1f2a9e3")

// pointID derives the stable qdrant point ID for a document ID.
func pointID(id string) *qdrantclient.PointId {
	return &qdrantclient.PointId{
		PointIdOptions: &qdrantclient.PointId_Uuid{
			Uuid: uuid.NewSHA1(pointNamespace, []byte(id)).String(),
		},
	}
}

func stringValue(s string) *qdrantclient.Value {
	return &qdrantclient.Value{Kind: &qdrantclient.Value_StringValue{StringValue: s}}
}

func intValue(n int64) *qdrantclient.Value {
	return &qdrantclient.Value{Kind: &qdrantclient.Value_IntegerValue{IntegerValue: n}}
}

// entryPayload builds the qdrant payload for an entry. Zero-valued
// metadata fields are omitted to conserve payload budget.
func entryPayload(entry *core.IndexEntry) map[string]*qdrantclient.Value {
	payload := map[string]*qdrantclient.Value{
		"id": stringValue(entry.Id),
	}

	meta := entry.Metadata
	setString := func(key, val string) {
		if val != "" {
			payload[key] = stringValue(val)
		}
	}
	setString("name", meta.Name)
	setString("category", meta.Category)
	setString("brand", meta.Brand)
	setString("source", meta.Source)
	setString("url", meta.URL)
	setString("image", meta.Image)
	setString("warranty", meta.Warranty)
	setString("processor", meta.Processor)
	setString("ram", meta.RAM)
	setString("storage", meta.Storage)
	setString("graphics", meta.Graphics)

	if meta.PriceMin != 0 {
		payload["price_min"] = intValue(meta.PriceMin)
	}
	if meta.PriceMax != 0 {
		payload["price_max"] = intValue(meta.PriceMax)
	}

	return payload
}

// entryFromPayload reconstructs an entry's identity and metadata from
// a qdrant payload.
func entryFromPayload(payload map[string]*qdrantclient.Value) *core.IndexEntry {
	getString := func(key string) string {
		return payload[key].GetStringValue()
	}

	return &core.IndexEntry{
		Id: getString("id"),
		Metadata: core.EntryMetadata{
			Name:      getString("name"),
			PriceMin:  payload["price_min"].GetIntegerValue(),
			PriceMax:  payload["price_max"].GetIntegerValue(),
			Category:  getString("category"),
			Brand:     getString("brand"),
			Source:    getString("source"),
			URL:       getString("url"),
			Image:     getString("image"),
			Warranty:  getString("warranty"),
			Processor: getString("processor"),
			RAM:       getString("ram"),
			Storage:   getString("storage"),
			Graphics:  getString("graphics"),
		},
	}
}
