package mock

import (
	"context"
	"unicode/utf8"
)

// MockEnricher is a test double for embed.TermEnricher.
// It allows custom behavior injection via function fields.
type MockEnricher struct {
	// EnrichTermFunc is called by EnrichTerm if set.
	// If nil, uses default length-based tagging.
	EnrichTermFunc func(ctx context.Context, term string) (string, error)

	callCount int
}

// NewMockEnricher creates a mock enricher with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockEnricher() *MockEnricher {
	return &MockEnricher{}
}

// EnrichTerm assigns a simple deterministic type tag.
func (m *MockEnricher) EnrichTerm(ctx context.Context, term string) (string, error) {
	m.callCount++

	if m.EnrichTermFunc != nil {
		return m.EnrichTermFunc(ctx, term)
	}

	if utf8.RuneCountInString(term) > 5 {
		return "abstract_concept", nil
	}
	return "artifact", nil
}

// CallCount returns the number of times EnrichTerm was called.
func (m *MockEnricher) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEnricher) Reset() {
	m.callCount = 0
	m.EnrichTermFunc = nil
}
