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


package mock

import "github.com/poiesic/textgraph/embed"

// MockProvider is a test double for embed.Provider.
// It aggregates mock embedder and enricher instances.
type MockProvider struct {
	embedder *MockEmbedder
	enricher *MockEnricher
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns embed.Provider interface for consistency with production
// constructors. Use GetMockEmbedder()/GetMockEnricher() to access concrete
// types for test assertions.
func NewMockProvider() embed.Provider {
	return &MockProvider{
		embedder: NewMockEmbedder(),
		enricher: NewMockEnricher(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock
// services, allowing full control over the behavior of each.
func NewMockProviderWithServices(embedder *MockEmbedder, enricher *MockEnricher) embed.Provider {
	return &MockProvider{
		embedder: embedder,
		enricher: enricher,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() embed.Embedder {
	return p.embedder
}

// Enricher returns the mock enricher.
func (p *MockProvider) Enricher() embed.TermEnricher {
	return p.enricher
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockEnricher returns the underlying mock enricher for test assertions.
func (p *MockProvider) GetMockEnricher() *MockEnricher {
	return p.enricher
}
