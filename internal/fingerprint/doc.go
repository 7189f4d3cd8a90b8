// Package fingerprint summarizes the content and membership of a file set
// matched by glob patterns into a single deterministic string.
//
// Patterns expand with doublestar semantics (globstar included) against a base
// directory; only regular files match. Each file contributes one
// "<sha256> <relative path>" line, deduplicated across patterns in pattern
// order with matches per pattern sorted lexicographically, so an unchanged
// tree always produces a byte-identical fingerprint. File hashing fans out
// over a bounded worker pool and joins before the fingerprint is assembled; a
// single failed read aborts the whole operation.
package fingerprint
