// Package engine decides which tasks are stale and drives the fixpoint run.
//
// The detector compares freshly computed fingerprints against the persisted
// pair and reports whether a task must run and why; outputs are checked before
// inputs so an externally deleted or modified artifact re-triggers its
// producer even when no input changed. The scheduler sweeps the task list in
// declaration order, executes stale tasks one at a time, persists both
// fingerprints after each success, and keeps starting new passes until a full
// pass executes nothing. The first failure of any kind ends the run.
package engine
