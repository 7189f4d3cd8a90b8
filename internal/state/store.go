package state

import (
	"context"
	"time"
)

// Entry is the persisted fingerprint pair for one task, keyed by the task's
// command fingerprint. Command is carried along for display only.
type Entry struct {
	Command string
	Input   string
	Output  string
}

// Store is the persistence contract the engine runs against.
type Store interface {
	// Load returns the entry for key. The boolean reports whether the key
	// was present; an absent entry means both fingerprints are empty.
	Load(ctx context.Context, key string) (Entry, bool, error)
	// Save writes both fingerprints for key atomically, replacing any
	// previous entry.
	Save(ctx context.Context, key string, entry Entry) error
}

// RunRecord is one row of run history.
type RunRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Passes     int
	Executed   int
	Status     string
	Detail     string
}

// Run history statuses.
const (
	RunStatusConverged = "converged"
	RunStatusFailed    = "failed"
)
