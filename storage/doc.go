// Package storage defines the repository interfaces for persisting
// ingestion artifacts and embedding vectors, along with the binary
// serialization helpers shared by backends.
//
// Artifact writes are whole-replace: re-ingesting a document overwrites its
// stored artifact in full; there is no partial or merge write. Vectors are
// stored separately from artifacts and addressed by embedding handle.
//
// The concrete BadgerDB implementation lives in storage/badger.
package storage
