package main

import (
	"errors"

	"reflow/internal/executor"
	"reflow/internal/fingerprint"
	"reflow/internal/runlock"
	"reflow/internal/taskfile"
)

// Stable process exit codes. A failing task propagates its own exit code
// (or 128+signal when killed), so tool codes stay in the low range.
const (
	exitOK               = 0
	exitGeneric          = 1
	exitTaskfileNotFound = 2
	exitTaskfileEmpty    = 3
	exitConfigInvalid    = 4
	exitFingerprintIO    = 5
	exitLockHeld         = 6
	exitNoOutputs        = 7
)

func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}

	var tfErr *taskfile.Error
	if errors.As(err, &tfErr) {
		switch tfErr.Kind {
		case taskfile.ErrNotFound:
			return exitTaskfileNotFound
		case taskfile.ErrEmpty:
			return exitTaskfileEmpty
		default:
			return exitConfigInvalid
		}
	}

	var ioErr *fingerprint.IOError
	if errors.As(err, &ioErr) {
		return exitFingerprintIO
	}

	var heldErr *runlock.HeldError
	if errors.As(err, &heldErr) {
		return exitLockHeld
	}

	var execErr *executor.ExecError
	if errors.As(err, &execErr) {
		switch execErr.Kind {
		case executor.NoOutputsProduced:
			return exitNoOutputs
		case executor.NonZeroExit, executor.KilledBySignal:
			if execErr.Code > 0 {
				return execErr.Code
			}
			return exitGeneric
		}
	}

	var classifier interface{ ErrorKind() string }
	if errors.As(err, &classifier) && classifier.ErrorKind() == "configuration" {
		return exitConfigInvalid
	}

	return exitGeneric
}
