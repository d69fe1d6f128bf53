package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// RawRecord is one row of the upstream catalog export, prior to
// normalization. String fields default to empty when the column is
// missing; the embedded JSON blobs default to nil when malformed.
type RawRecord struct {
	Index          int
	SKU            string
	Name           string
	Price          string
	Category       string
	Brand          string
	Source         string
	URL            string
	Image          string
	Description    string
	Specifications map[string]string
	KeyFeatures    []string
	Warranty       string
}

// ReadRecords parses catalog rows from CSV. The first row must be a
// header; unknown columns are ignored and missing columns read as
// empty. Malformed embedded JSON (specifications, key_features) is
// treated as absent rather than failing the row.
func ReadRecords(r io.Reader) ([]*RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []*RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", len(records), err)
		}

		records = append(records, &RawRecord{
			Index:          len(records),
			SKU:            field(row, "sku"),
			Name:           field(row, "name"),
			Price:          field(row, "price"),
			Category:       field(row, "category"),
			Brand:          field(row, "brand"),
			Source:         field(row, "source"),
			URL:            field(row, "url"),
			Image:          field(row, "image"),
			Description:    field(row, "description"),
			Specifications: parseJSONObject(field(row, "specifications")),
			KeyFeatures:    parseJSONList(field(row, "key_features")),
			Warranty:       field(row, "warranty_info"),
		})
	}

	return records, nil
}

// LoadRecords reads catalog rows from a CSV file.
func LoadRecords(path string) ([]*RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return ReadRecords(f)
}

// parseJSONObject decodes a JSON object of strings, returning nil for
// empty or malformed input.
func parseJSONObject(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	var obj map[string]string
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil
	}
	return obj
}

// parseJSONList decodes a JSON array of strings, returning nil for
// empty or malformed input.
func parseJSONList(raw string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
