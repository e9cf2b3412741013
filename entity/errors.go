package entity

import "errors"

var (
	// ErrAllocatorRequired is returned when a registry is created without
	// an identifier allocator.
	ErrAllocatorRequired = errors.New("identifier allocator required")

	// ErrClassifierRequired is returned when a registry is created without
	// a classifier.
	ErrClassifierRequired = errors.New("classifier required")

	// ErrSentenceIDRequired is returned when a mention is registered
	// without a sentence identifier.
	ErrSentenceIDRequired = errors.New("sentence identifier required")

	// ErrEmptyTerm is returned when an empty surface term is registered.
	ErrEmptyTerm = errors.New("surface term cannot be empty")
)
