// Package embed provides abstractions for the external model services the
// pipeline collaborates with.
//
// The pipeline never inspects vector contents: embeddings are opaque
// pass-through values stored by handle. Term enrichment is likewise optional
// and pluggable — the pipeline is fully functional without either service.
//
// Two implementation sub-packages exist:
//
//   - embed/openai: production implementation over OpenAI-compatible APIs
//   - embed/mock: deterministic test doubles
package embed
