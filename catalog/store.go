package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poiesic/indexit/core"
)

// SaveDocuments writes the canonical document set as a JSON array.
// This artifact is the pipeline's sole persisted intermediate and the
// batch generator's required input; parent directories are created as
// needed.
func SaveDocuments(path string, docs []*core.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write documents: %w", err)
	}

	return nil
}

// LoadDocuments reads a previously saved canonical document set.
func LoadDocuments(path string) ([]*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	var docs []*core.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal documents: %w", err)
	}

	return docs, nil
}

// SearchableTexts extracts the embedding inputs from a document set,
// preserving order.
func SearchableTexts(docs []*core.Document) []string {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.SearchableText
	}
	return texts
}
