package badger

import "github.com/poiesic/textgraph/core"

// Key prefixes for different data types
const (
	artifactPrefix = "artrec"
	documentPrefix = "docrec"
	vectorPrefix   = "vecrec"
)

// makeArtifactKey generates a key for an artifact by document ID.
func makeArtifactKey(documentID core.ID) []byte {
	return []byte(artifactPrefix + ":" + string(documentID))
}

// makeDocumentKey generates a key for the document-metadata index.
// Document records are stored next to their artifacts so that listing does
// not have to decode full artifacts.
func makeDocumentKey(documentID core.ID) []byte {
	return []byte(documentPrefix + ":" + string(documentID))
}

// makeVectorKey generates a key for a stored embedding vector.
// Format: prefix:model:contentKey
func makeVectorKey(model, contentKey string) []byte {
	return []byte(vectorPrefix + ":" + model + ":" + contentKey)
}

// makeVectorModelPrefix generates the iteration prefix for one model's
// vectors.
func makeVectorModelPrefix(model string) []byte {
	return []byte(vectorPrefix + ":" + model + ":")
}
