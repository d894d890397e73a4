package search

import "errors"

var (
	// ErrEmbedderRequired is returned when an index is built without an embedder.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrCorpusMismatch is returned when the backend yields a different
	// number of vectors than contexts submitted.
	ErrCorpusMismatch = errors.New("corpus embedding count mismatch")

	// ErrStoreRequired is returned when a router is built without a lead store.
	ErrStoreRequired = errors.New("lead store required")

	// ErrIndexRequired is returned when a router is built without an index.
	ErrIndexRequired = errors.New("embedding index required")
)
