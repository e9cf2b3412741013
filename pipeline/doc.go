// Package pipeline orchestrates the text-to-knowledge-graph ingestion run:
// segmentation, identifier allocation, entity registration, classification,
// optional embedding, artifact assembly and the final store write.
//
// A single Pipeline instance serves many documents. Each document run is
// single-pass and strictly ordered within itself, and gets its own
// identifier allocator and entity registry; batches run documents in
// parallel over a bounded worker pool with per-document failure isolation.
package pipeline
