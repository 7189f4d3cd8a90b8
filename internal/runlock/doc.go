// Package runlock guards the cache directory with a file lock so two runs
// against the same taskfile cannot interleave fingerprint bookkeeping.
package runlock
