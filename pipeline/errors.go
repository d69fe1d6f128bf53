package pipeline

import "errors"

var (
	// ErrIndexRequired is returned when a nil vector index is supplied.
	ErrIndexRequired = errors.New("vector index is required")

	// ErrNoProviders is returned when the orchestrator has no embedding
	// providers to run.
	ErrNoProviders = errors.New("at least one embedding provider is required")

	// ErrNoDocuments is returned when a run is started with an empty
	// document set.
	ErrNoDocuments = errors.New("document set is empty")
)
