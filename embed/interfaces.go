package embed

import "context"

// Embedder generates vector embeddings from text. The pipeline treats
// embeddings as opaque: it stores the vectors in the vector store and records
// only handles on the artifact. Implementations must be thread-safe for
// concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the identifier of the embedding model. It becomes part
	// of every embedding handle issued for this embedder's vectors.
	Model() string
}

// TermEnricher assigns a type tag to a canonical term. It is a pluggable
// capability: the pipeline runs fine without one, tagging every entity
// "term". Implementations must be thread-safe for concurrent use.
type TermEnricher interface {
	// EnrichTerm returns a type tag for the term, drawn from TermTypes.
	// An empty tag means the enricher could not classify the term.
	EnrichTerm(ctx context.Context, term string) (string, error)
}

// Provider aggregates the embedding and enrichment services for convenient
// initialization and lifecycle management.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Enricher returns the term enrichment service.
	// The returned TermEnricher is safe for concurrent use.
	Enricher() TermEnricher

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
