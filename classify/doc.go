// Package classify scores documents against two independent static
// taxonomies and derives normalized concept-weight distributions.
//
// Classification is deterministic: keyword counts are normalized per
// taxonomy, score ties are broken by declaration order, and zero-signal
// inputs fall back to uniform distributions rather than zero vectors. A
// classifier that matched nothing must never be conflated with one that
// found every category equally irrelevant.
//
// The package also owns the shared tokenizer used by entity extraction, so
// both components agree on token boundaries and stop words.
package classify
