package engine

import (
	"context"

	"reflow/internal/state"
	"reflow/internal/taskfile"
)

// Reason explains why a task was executed or skipped.
type Reason string

const (
	// ReasonOutputsMissing: output patterns are declared but no output file
	// currently exists.
	ReasonOutputsMissing Reason = "outputs missing"
	// ReasonOutputsChanged: an output file was touched or deleted since the
	// last recorded run.
	ReasonOutputsChanged Reason = "outputs changed externally"
	// ReasonInputsChanged: the watched input set differs from the last
	// recorded run.
	ReasonInputsChanged Reason = "inputs changed"
	// ReasonUpToDate: nothing to do.
	ReasonUpToDate Reason = "up to date"
)

// Fingerprinter computes the fingerprint of a pattern set rooted at baseDir.
type Fingerprinter interface {
	Fingerprint(ctx context.Context, baseDir string, patterns []string) (string, error)
}

// Decision is the detector's verdict for one task.
type Decision struct {
	Run    bool
	Reason Reason
}

// Detect decides whether task must run given its persisted fingerprint pair.
// Rules apply in order and the first match wins; the output checks precede the
// input check so chained tasks stay correct when an artifact is removed by
// hand.
func Detect(ctx context.Context, fp Fingerprinter, baseDir string, task *taskfile.Task, persisted state.Entry) (Decision, error) {
	currentOutput, err := fp.Fingerprint(ctx, baseDir, task.OutputPatterns)
	if err != nil {
		return Decision{}, err
	}
	if task.HasOutputs() && currentOutput == "" {
		return Decision{Run: true, Reason: ReasonOutputsMissing}, nil
	}
	if currentOutput != persisted.Output {
		return Decision{Run: true, Reason: ReasonOutputsChanged}, nil
	}

	currentInput, err := fp.Fingerprint(ctx, baseDir, task.InputPatterns)
	if err != nil {
		return Decision{}, err
	}
	if currentInput != persisted.Input {
		return Decision{Run: true, Reason: ReasonInputsChanged}, nil
	}
	return Decision{Run: false, Reason: ReasonUpToDate}, nil
}
