package embedding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/indexit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifact_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embeddings_openai.vec")

	vectors := [][]float32{
		{0.1, -0.2, 0.3},
		{1.5, 2.5, -3.5},
	}
	meta := ArtifactMeta{
		Model:        "openai/text-embedding-3-small",
		Dimension:    3,
		Count:        2,
		DocsChecksum: core.Checksum([]string{"a", "b"}),
	}

	require.NoError(t, SaveArtifact(path, vectors, meta))

	loaded, loadedMeta, err := LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, vectors, loaded)
	assert.Equal(t, meta.Model, loadedMeta.Model)
	assert.Equal(t, [2]int{2, 3}, loadedMeta.Shape)
	assert.Equal(t, int64(24), loadedMeta.ByteSize)
	assert.Equal(t, meta.DocsChecksum, loadedMeta.DocsChecksum)
}

func TestSaveArtifact_RejectsShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embeddings.vec")
	vectors := [][]float32{{0.1, 0.2}}

	err := SaveArtifact(path, vectors, ArtifactMeta{Dimension: 3, Count: 1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestLoadArtifact_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embeddings.vec")
	vectors := [][]float32{{0.1, 0.2, 0.3}}
	require.NoError(t, SaveArtifact(path, vectors, ArtifactMeta{Dimension: 3, Count: 1}))

	// Chop the binary without touching the metadata.
	require.NoError(t, os.WriteFile(path, []byte{0, 0}, 0644))

	_, _, err := LoadArtifact(path)
	assert.ErrorIs(t, err, ErrTruncatedArtifact)
}

func TestVerifyArtifact(t *testing.T) {
	checksum := core.Checksum([]string{"a", "b"})
	meta := &ArtifactMeta{Count: 2, DocsChecksum: checksum}

	require.NoError(t, VerifyArtifact(meta, checksum, 2))

	err := VerifyArtifact(meta, checksum, 3)
	assert.ErrorIs(t, err, ErrCountMismatch)

	err = VerifyArtifact(meta, core.Checksum([]string{"changed"}), 2)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestMetaPath(t *testing.T) {
	assert.Equal(t, "data/embeddings_openai_meta.json", MetaPath("data/embeddings_openai.vec"))
	assert.Equal(t, "embeddings_meta.json", MetaPath("embeddings.vec"))
}
