// Package mock provides test double implementations of the embed service
// interfaces.
//
// The mocks allow tests to run without external model services and with
// controlled, deterministic behavior:
//
//   - MockEmbedder: returns deterministic vectors based on text hash
//   - MockEnricher: assigns simple length-based type tags
//   - MockProvider: aggregates both
//
// Custom behavior can be injected via the Func fields, and call counts are
// tracked for assertions.
package mock
