package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for graph nodes produced by one ingestion run.
// IDs are hierarchical strings issued by the ident package; the kind of the
// node (document, segment, sentence, entity) is recoverable from the string.
type ID string

// Fingerprint is a hex-encoded BLAKE2b-256 digest of a document's raw bytes.
// It is stored for dedup and audit purposes; the raw text is never persisted.
type Fingerprint string

// FingerprintBytes computes the content fingerprint of raw document bytes.
// Identical content always produces an identical fingerprint.
func FingerprintBytes(data []byte) Fingerprint {
	h, _ := blake2b.New(32, nil)
	h.Write(data)
	return Fingerprint(hex.EncodeToString(h.Sum(nil)))
}

// ConceptKeys is the fixed set of semantic-category keys, in canonical
// declaration order. All concept-weight distributions range over exactly
// these keys, and argmax ties are broken by this order.
var ConceptKeys = []string{
	"temporal",
	"spatial",
	"emotional",
	"entity",
	"action",
	"abstract",
}

// ConceptWeights maps each concept key to a non-negative weight.
// A valid distribution sums to 1 over ConceptKeys.
type ConceptWeights map[string]float64

// Dominant returns the concept key with the highest weight.
// Ties are broken by the canonical ConceptKeys order so the result is
// reproducible across runs.
func (w ConceptWeights) Dominant() string {
	best := ""
	bestWeight := -1.0
	for _, key := range ConceptKeys {
		if w[key] > bestWeight {
			best = key
			bestWeight = w[key]
		}
	}
	return best
}

// CategoryScore is one taxonomy category with its normalized score.
type CategoryScore struct {
	Category string
	Score    float64
}

// EmbeddingHandle is an opaque reference to an externally supplied embedding
// vector. The artifact stores only the handle; the vector itself lives in
// the vector store, addressed by (Model, Key).
type EmbeddingHandle struct {
	Model string
	Key   string
}

// IsZero reports whether the handle is unset.
func (h EmbeddingHandle) IsZero() bool {
	return h.Model == "" && h.Key == ""
}

// Document is one ingested text. Created once per ingestion run and
// immutable thereafter.
type Document struct {
	Id          ID
	Title       string
	Source      string
	Fingerprint Fingerprint
	IngestedAt  time.Time
	TokenCount  int
	Topics      []CategoryScore // top categories from the topic taxonomy
	Styles      []CategoryScore // top categories from the discourse-style taxonomy
}

// Segment is an ordered, fixed-size group of consecutive sentences.
// Segments partition the sentence sequence with no gaps or overlaps;
// ordinals are contiguous from zero.
type Segment struct {
	Id          ID
	Ordinal     int
	KeyTerms    []string
	SentenceIds []ID
}

// Sentence is one sentence span. The sentence text itself is not persisted;
// only its identity, position, concept profile and embedding handle are.
type Sentence struct {
	Id        ID
	Ordinal   int // document-global, strictly increasing
	Concepts  ConceptWeights
	Embedding EmbeddingHandle
}

// Entity is a canonical, deduplicated concept mention. The uniqueness key is
// the case-folded label; the first occurrence defines the canonical
// identifier and the entity is immutable after creation.
type Entity struct {
	Id         ID
	Label      string // case-folded canonical form
	Type       string
	Concepts   ConceptWeights
	Embeddings []EmbeddingHandle
}

// Mention links one sentence to one entity. Concept captures the entity's
// dominant concept key at the time the mention was created.
type Mention struct {
	SentenceId ID
	EntityId   ID
	Surface    string
	Concept    string
	Weight     float64
}

// Artifact is the complete output of one ingestion run: the document record,
// the ordered node sequences, the mentions, and the rendered graph-creation
// script. Re-ingesting a document replaces its artifact wholesale.
type Artifact struct {
	Document  Document
	Segments  []Segment
	Sentences []Sentence
	Entities  []Entity
	Mentions  []Mention
	Script    string
}

// VectorRecord is a stored embedding vector, addressed by its handle.
// Artifacts never embed vectors directly.
type VectorRecord struct {
	Model      string
	Key        string
	Values     []float32
	InsertedAt time.Time
}
