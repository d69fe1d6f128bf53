package embedding

import (
	"fmt"
	"math"
)

// NormalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	// Can't normalize zero vector
	if magnitude == 0 {
		result := make([]float32, len(v))
		return result
	}

	result := make([]float32, len(v))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}

// ValidateVectors checks a generated embedding set against the batch
// generator's post-generation contract: one vector per input text, every
// vector of the declared dimension, and no non-finite values. Detection
// only; nothing is repaired.
func ValidateVectors(vectors [][]float32, expectedCount, dimension int) error {
	if len(vectors) != expectedCount {
		return fmt.Errorf("%w: expected %d, got %d", ErrCountMismatch, expectedCount, len(vectors))
	}

	for i, vector := range vectors {
		if len(vector) != dimension {
			return fmt.Errorf("%w: vector %d has dimension %d, expected %d",
				ErrDimensionMismatch, i, len(vector), dimension)
		}
		for j, val := range vector {
			if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
				return fmt.Errorf("%w: vector %d, component %d", ErrNonFiniteValue, i, j)
			}
		}
	}

	return nil
}
