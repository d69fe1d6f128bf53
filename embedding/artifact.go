package embedding

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactMeta is the sidecar record persisted next to an embedding
// artifact. It identifies the producing model and pins the artifact to
// the document set it was generated from via a checksum of the
// searchable texts.
type ArtifactMeta struct {
	Model        string `json:"model"`
	Dimension    int    `json:"dimension"`
	Count        int    `json:"num_documents"`
	Shape        [2]int `json:"shape"`
	ByteSize     int64  `json:"byte_size"`
	DocsChecksum string `json:"docs_checksum"`
	TotalTokens  int64  `json:"total_tokens,omitempty"`
}

// MetaPath derives the sidecar path for an artifact file:
// "embeddings_openai.vec" -> "embeddings_openai_meta.json".
func MetaPath(artifactPath string) string {
	base := strings.TrimSuffix(artifactPath, filepath.Ext(artifactPath))
	return base + "_meta.json"
}

// SaveArtifact persists a dense [count][dimension] float32 matrix as
// little-endian binary, plus its metadata sidecar. Parent directories
// are created as needed.
func SaveArtifact(path string, vectors [][]float32, meta ArtifactMeta) error {
	if err := ValidateVectors(vectors, meta.Count, meta.Dimension); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	buf := make([]byte, 4)
	for _, vector := range vectors {
		for _, val := range vector {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(val))
			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("failed to write artifact: %w", err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	meta.Shape = [2]int{meta.Count, meta.Dimension}
	meta.ByteSize = int64(meta.Count) * int64(meta.Dimension) * 4

	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact metadata: %w", err)
	}
	if err := os.WriteFile(MetaPath(path), metaData, 0644); err != nil {
		return fmt.Errorf("failed to write artifact metadata: %w", err)
	}

	return nil
}

// LoadArtifact reads a persisted embedding artifact and its metadata.
// The binary size must match the metadata's declared shape exactly.
func LoadArtifact(path string) ([][]float32, *ArtifactMeta, error) {
	metaData, err := os.ReadFile(MetaPath(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read artifact metadata: %w", err)
	}

	var meta ArtifactMeta
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal artifact metadata: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	expected := meta.Count * meta.Dimension * 4
	if len(data) != expected {
		return nil, nil, fmt.Errorf("%w: have %d bytes, metadata declares %d",
			ErrTruncatedArtifact, len(data), expected)
	}

	vectors := make([][]float32, meta.Count)
	offset := 0
	for i := range vectors {
		vector := make([]float32, meta.Dimension)
		for j := range vector {
			vector[j] = math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))
			offset += 4
		}
		vectors[i] = vector
	}

	return vectors, &meta, nil
}

// VerifyArtifact checks that an artifact's metadata matches the
// document set identified by docsChecksum and count. It guards the
// upload path against combining stale embeddings with revised
// documents.
func VerifyArtifact(meta *ArtifactMeta, docsChecksum string, count int) error {
	if meta.Count != count {
		return fmt.Errorf("%w: artifact has %d vectors, document set has %d",
			ErrCountMismatch, meta.Count, count)
	}
	if meta.DocsChecksum != "" && meta.DocsChecksum != docsChecksum {
		return fmt.Errorf("%w: artifact was generated from a different document set",
			ErrChecksumMismatch)
	}
	return nil
}
