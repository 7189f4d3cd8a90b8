package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// FailureKind names an ExecError classification.
type FailureKind string

const (
	// NonZeroExit means the command exited with a non-zero status.
	NonZeroExit FailureKind = "non_zero_exit"
	// KilledBySignal means the command died to a signal and has no exit code.
	KilledBySignal FailureKind = "killed_by_signal"
	// NoOutputsProduced means the command succeeded but produced none of its
	// declared output files.
	NoOutputsProduced FailureKind = "no_outputs_produced"
)

// ExecError is a fatal task execution failure. Any ExecError stops the run;
// no further tasks or passes execute. For NonZeroExit, Code is the child's
// exit code; for KilledBySignal it is 128 plus the signal number, shell-style.
type ExecError struct {
	Kind    FailureKind
	Command string
	Code    int
	Signal  string
}

func (e *ExecError) Error() string {
	switch e.Kind {
	case NonZeroExit:
		return fmt.Sprintf("task %q exited with code %d", e.Command, e.Code)
	case KilledBySignal:
		return fmt.Sprintf("task %q killed by signal %s", e.Command, e.Signal)
	case NoOutputsProduced:
		return fmt.Sprintf("task %q declares output patterns but produced no matching files", e.Command)
	default:
		return fmt.Sprintf("task %q failed", e.Command)
	}
}

// ErrorKind classifies execution failures for status and exit-code mapping.
func (e *ExecError) ErrorKind() string {
	return "exec"
}

// CommandRunner abstracts command execution so the engine can be tested
// without a shell.
type CommandRunner interface {
	Run(ctx context.Context, baseDir, command string) error
}

// Shell runs commands through the native command interpreter.
type Shell struct{}

// NewShell returns the production CommandRunner.
func NewShell() *Shell {
	return &Shell{}
}

// Run spawns command via the platform shell with baseDir as the working
// directory and the parent's standard streams attached. It blocks until the
// child exits and classifies any failure into an *ExecError.
func (*Shell) Run(ctx context.Context, baseDir, command string) error {
	name, args := shellInvocation(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = baseDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if name, num, ok := terminationSignal(exitErr); ok {
			return &ExecError{Kind: KilledBySignal, Command: command, Code: 128 + num, Signal: name}
		}
		return &ExecError{Kind: NonZeroExit, Command: command, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("start command %q: %w", command, err)
}
