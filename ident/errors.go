package ident

import "errors"

var (
	// ErrAllocatorExhausted is returned when the identifier sequence field
	// overflows. It is fatal for the current document: continuing would
	// reuse a (clock, sequence) pair and violate uniqueness.
	ErrAllocatorExhausted = errors.New("identifier allocator exhausted")

	// ErrEmptyContext is returned when an identifier is requested without
	// a parent context.
	ErrEmptyContext = errors.New("parent context required")
)
