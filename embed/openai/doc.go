// Package openai provides embed service implementations backed by
// OpenAI-compatible HTTP APIs.
//
// The package works with any service exposing the OpenAI wire format,
// including local model servers such as Ollama and llama.cpp. Two services
// are implemented:
//
//   - Embedder: text embedding via the embeddings endpoint
//   - TermEnricher: semantic type tagging of terms via chat completion
//     with JSON-mode output
//
// Enricher responses pass through a small JSON repair step because local
// models occasionally emit malformed keys.
package openai
