package main

import (
	"errors"
	"fmt"
	"testing"

	"reflow/internal/engine"
	"reflow/internal/executor"
	"reflow/internal/fingerprint"
	"reflow/internal/runlock"
	"reflow/internal/taskfile"
)

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"generic", errors.New("boom"), exitGeneric},
		{"taskfile missing", &taskfile.Error{Kind: taskfile.ErrNotFound}, exitTaskfileNotFound},
		{"taskfile empty", &taskfile.Error{Kind: taskfile.ErrEmpty}, exitTaskfileEmpty},
		{"taskfile malformed", &taskfile.Error{Kind: taskfile.ErrNoPatterns}, exitConfigInvalid},
		{"duplicate command", &taskfile.Error{Kind: taskfile.ErrDuplicateCommand}, exitConfigInvalid},
		{"fingerprint io", &fingerprint.IOError{Path: "a.txt", Err: errors.New("denied")}, exitFingerprintIO},
		{"lock held", &runlock.HeldError{Path: "lock"}, exitLockHeld},
		{"no outputs", &executor.ExecError{Kind: executor.NoOutputsProduced, Command: "gen"}, exitNoOutputs},
		{"child exit propagated", &executor.ExecError{Kind: executor.NonZeroExit, Command: "gen", Code: 42}, 42},
		{"signal killed", &executor.ExecError{Kind: executor.KilledBySignal, Command: "gen", Code: 128 + 9, Signal: "SIGKILL"}, 128 + 9},
		{"pass ceiling", &engine.PassCeilingError{MaxPasses: 8}, exitConfigInvalid},
		{"wrapped taskfile error", fmt.Errorf("load: %w", &taskfile.Error{Kind: taskfile.ErrNotFound}), exitTaskfileNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCodeFor(tc.err); got != tc.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
