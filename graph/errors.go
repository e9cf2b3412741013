package graph

import "errors"

var (
	// ErrIntegrity wraps all referential-integrity violations detected
	// during artifact assembly. These are internal-consistency bugs, never
	// recoverable; no artifact is emitted.
	ErrIntegrity = errors.New("artifact integrity violation")

	// ErrDuplicateID indicates the same identifier would be emitted twice
	// as a node-creation statement.
	ErrDuplicateID = errors.New("duplicate node identifier")

	// ErrOrphanSentence indicates a sentence that belongs to no segment.
	ErrOrphanSentence = errors.New("sentence not assigned to any segment")

	// ErrUnknownReference indicates a segment or mention referencing an
	// identifier that does not exist in the current run.
	ErrUnknownReference = errors.New("reference to unknown identifier")

	// ErrSegmentOrdinals indicates segment ordinals that are not contiguous
	// from zero.
	ErrSegmentOrdinals = errors.New("segment ordinals not contiguous from zero")
)
