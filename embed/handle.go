package embed

import "github.com/poiesic/textgraph/core"

// HandleFor derives the embedding handle for a text under a given model.
// The key is content-based, so identical (model, text) pairs always map to
// the same handle and re-ingestion reuses stored vectors.
func HandleFor(model, text string) core.EmbeddingHandle {
	return core.EmbeddingHandle{
		Model: model,
		Key:   string(core.FingerprintBytes([]byte(model + "\x00" + text))),
	}
}
