// Package state persists per-task fingerprints between runs.
//
// The Store interface is the only thing the engine sees: load the last-known
// input/output fingerprint pair for a task key, or save a fresh pair after a
// successful execution. The pair is always written together so a crash can at
// worst leave a task stale (redundant re-run), never half-updated.
//
// The SQLite backend lives in the cache directory beside the taskfile and
// additionally keeps a run-history table for `reflow status`. MemoryStore
// backs tests. Schema changes bump schemaVersion in schema.go; the database is
// bookkeeping, not an archive, so adopting a new schema means deleting it.
package state
