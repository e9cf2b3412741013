package storage

import (
	"context"

	"github.com/poiesic/textgraph/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ArtifactRepository provides operations for managing ingestion artifacts.
type ArtifactRepository interface {
	Repository
	// PutArtifact stores an artifact keyed by its document identifier.
	// Writes are whole-file replace: any prior artifact stored under the
	// same document identifier is overwritten, never merged.
	PutArtifact(ctx context.Context, artifact *core.Artifact) error

	// GetArtifact retrieves an artifact by its document identifier.
	// Returns ErrNotFound if no artifact exists.
	GetArtifact(ctx context.Context, documentID core.ID) (*core.Artifact, error)

	// GetScript retrieves only the creation script of a stored artifact.
	// Returns ErrNotFound if no artifact exists.
	GetScript(ctx context.Context, documentID core.ID) (string, error)

	// ListDocuments returns the document records of all stored artifacts,
	// ordered by document identifier.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// DeleteArtifact removes an artifact by its document identifier.
	// Returns ErrNotFound if no artifact exists.
	DeleteArtifact(ctx context.Context, documentID core.ID) error
}

// VectorMatch is one similarity-search hit.
type VectorMatch struct {
	Record *core.VectorRecord
	Score  float32
}

// VectorRepository provides operations for stored embedding vectors.
// Artifacts carry only embedding handles; the vectors live here, addressed
// by (model, key).
type VectorRepository interface {
	Repository
	// PutVectors stores one or more vector records. Existing records with
	// the same (model, key) are overwritten.
	PutVectors(ctx context.Context, records ...*core.VectorRecord) error

	// GetVector retrieves a vector record by its handle.
	// Returns ErrNotFound if the record doesn't exist.
	GetVector(ctx context.Context, handle core.EmbeddingHandle) (*core.VectorRecord, error)

	// FindSimilar finds stored vectors similar to the given vector,
	// restricted to records of the given model.
	// Returns records with similarity >= minSimilarity, up to limit results,
	// ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, model string, vector []float32, minSimilarity float32, limit int) ([]*VectorMatch, error)
}
