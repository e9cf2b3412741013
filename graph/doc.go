// Package graph assembles the validated in-memory model of one ingestion
// run into a serializable artifact and a parameterized graph-creation
// script.
//
// The builder enforces referential integrity before emission: every sentence
// belongs to exactly one segment, every mention references identifiers that
// exist in the run, and no identifier appears twice as a node creation.
// Violations are internal-consistency bugs and halt emission; a partially
// valid artifact is never written.
//
// The script lists all node-creation statements before any relationship
// statement, with stable statement order and parameter naming, so that
// script text diffs cleanly between runs over identical input.
package graph
