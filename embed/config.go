// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package embed

import (
	"errors"
	"strings"
)

// Config holds configuration for embedding and enrichment providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// EnricherHost is the base URL for the term-enrichment service API.
	EnricherHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "ruri-v3", "text-embedding-3-small"
	EmbeddingModel string

	// EnricherModel is the model identifier to use for term enrichment.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	EnricherModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEnricherHost sets the enrichment service host URL.
func WithEnricherHost(host string) ConfigOption {
	return func(c *Config) {
		c.EnricherHost = host
	}
}

// WithHost sets both embedding and enricher hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.EnricherHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithEnricherModel sets the enricher model identifier.
func WithEnricherModel(model string) ConfigOption {
	return func(c *Config) {
		c.EnricherModel = model
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:  defaultHost,
		EnricherHost:   defaultHost,
		EmbeddingModel: "ruri-v3",
		EnricherModel:  "qwen2.5:3b",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/") + "/v1"
	}
	if c.EnricherHost != "" && !strings.HasSuffix(c.EnricherHost, "/v1") {
		c.EnricherHost = strings.TrimSuffix(c.EnricherHost, "/") + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("embed config: EmbeddingHost is required")
	}
	if c.EnricherHost == "" {
		return errors.New("embed config: EnricherHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("embed config: EmbeddingModel is required")
	}
	if c.EnricherModel == "" {
		return errors.New("embed config: EnricherModel is required")
	}
	return nil
}
