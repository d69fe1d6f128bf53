package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVector(t *testing.T) {
	v := NormalizeVector([]float32{1.0, 2.0, 2.0}) // magnitude 3.0

	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	assert.InDelta(t, 1.0, magnitude, 0.001)
}

func TestNormalizeVector_ZeroVector(t *testing.T) {
	v := NormalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, v)
}

func TestNormalizeVector_Empty(t *testing.T) {
	assert.Empty(t, NormalizeVector(nil))
}

func TestValidateVectors_Valid(t *testing.T) {
	vectors := [][]float32{{0.1, 0.2}, {0.3, 0.4}}
	require.NoError(t, ValidateVectors(vectors, 2, 2))
}

func TestValidateVectors_CountMismatch(t *testing.T) {
	vectors := [][]float32{{0.1, 0.2}}
	err := ValidateVectors(vectors, 2, 2)
	assert.ErrorIs(t, err, ErrCountMismatch)
}

func TestValidateVectors_DimensionMismatch(t *testing.T) {
	vectors := [][]float32{{0.1, 0.2}, {0.3}}
	err := ValidateVectors(vectors, 2, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestValidateVectors_NaN(t *testing.T) {
	vectors := [][]float32{{0.1, float32(math.NaN())}}
	err := ValidateVectors(vectors, 1, 2)
	assert.ErrorIs(t, err, ErrNonFiniteValue)
}

func TestValidateVectors_Inf(t *testing.T) {
	vectors := [][]float32{{float32(math.Inf(1)), 0.2}}
	err := ValidateVectors(vectors, 1, 2)
	assert.ErrorIs(t, err, ErrNonFiniteValue)
}
