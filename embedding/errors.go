package embedding

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrCountMismatch indicates the provider returned a different
	// number of vectors than texts submitted.
	ErrCountMismatch = errors.New("embedding count mismatch")

	// ErrDimensionMismatch indicates a vector's length differs from the
	// provider's declared dimension.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrNonFiniteValue indicates a vector contains NaN or Inf.
	ErrNonFiniteValue = errors.New("embedding contains non-finite value")

	// ErrChecksumMismatch indicates a persisted artifact does not match
	// the document set it is being combined with.
	ErrChecksumMismatch = errors.New("artifact checksum mismatch")

	// ErrTruncatedArtifact indicates the artifact file is shorter than
	// its metadata declares.
	ErrTruncatedArtifact = errors.New("truncated embedding artifact")
)
