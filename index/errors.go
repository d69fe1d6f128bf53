package index

import "errors"

var (
	// ErrIndexRequired is returned when a nil VectorIndex is supplied.
	ErrIndexRequired = errors.New("vector index is required")

	// ErrCountMismatch is returned when the number of vectors does not
	// match the number of documents being upserted.
	ErrCountMismatch = errors.New("document/vector count mismatch")

	// ErrVerificationFailed is returned when a namespace's entry count
	// after an upsert does not match the expected document count.
	ErrVerificationFailed = errors.New("namespace count verification failed")
)
