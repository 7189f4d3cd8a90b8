package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"reflow/internal/executor"
	"reflow/internal/logging"
	"reflow/internal/state"
	"reflow/internal/taskfile"
)

// PassCeilingError reports that the configured pass ceiling was reached
// before the run converged. The default ceiling of zero disables the check.
type PassCeilingError struct {
	MaxPasses int
}

func (e *PassCeilingError) Error() string {
	return fmt.Sprintf("run did not converge within %d passes; tasks are likely invalidating each other's outputs", e.MaxPasses)
}

// ErrorKind classifies a ceiling breach as a configuration problem: only a
// taskfile whose tasks perpetually rewrite each other's files can trigger it.
func (e *PassCeilingError) ErrorKind() string {
	return "configuration"
}

// TaskResult records one task evaluation within a pass.
type TaskResult struct {
	Command string
	Pass    int
	Ran     bool
	Reason  Reason
}

// Outcome summarizes a converged run.
type Outcome struct {
	Passes   int
	Executed int
	Results  []TaskResult
}

// Scheduler drives tasks to a fixed point.
type Scheduler struct {
	baseDir string
	tasks   []*taskfile.Task
	store   state.Store
	fp      Fingerprinter
	runner  executor.CommandRunner
	logger  *slog.Logger

	// maxPasses bounds the pass loop; zero keeps the original unbounded
	// retry-until-quiescent behavior.
	maxPasses int
}

// Option configures optional Scheduler behavior.
type Option func(*Scheduler)

// WithMaxPasses sets a ceiling on the number of passes before the run is
// declared divergent.
func WithMaxPasses(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.maxPasses = n
		}
	}
}

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a Scheduler over the given collaborators.
func New(baseDir string, tasks []*taskfile.Task, store state.Store, fp Fingerprinter, runner executor.CommandRunner, opts ...Option) (*Scheduler, error) {
	if store == nil || fp == nil || runner == nil {
		return nil, errors.New("scheduler requires store, fingerprinter, and runner")
	}
	s := &Scheduler{
		baseDir: baseDir,
		tasks:   tasks,
		store:   store,
		fp:      fp,
		runner:  runner,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "engine")
	return s, nil
}

// Run sweeps the task list until a full pass executes nothing. Tasks are
// evaluated strictly in declaration order and one at a time; any failure ends
// the run immediately with nothing further persisted.
func (s *Scheduler) Run(ctx context.Context) (Outcome, error) {
	outcome := Outcome{}

	for {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		outcome.Passes++
		if s.maxPasses > 0 && outcome.Passes > s.maxPasses {
			return outcome, &PassCeilingError{MaxPasses: s.maxPasses}
		}

		ranThisPass := false
		for _, task := range s.tasks {
			ran, reason, err := s.evaluate(ctx, task, outcome.Passes)
			if err != nil {
				return outcome, err
			}
			outcome.Results = append(outcome.Results, TaskResult{
				Command: task.Command,
				Pass:    outcome.Passes,
				Ran:     ran,
				Reason:  reason,
			})
			if ran {
				ranThisPass = true
				outcome.Executed++
			}
		}

		if !ranThisPass {
			s.logger.Info("run converged", "passes", outcome.Passes, "executed", outcome.Executed)
			return outcome, nil
		}
	}
}

func (s *Scheduler) evaluate(ctx context.Context, task *taskfile.Task, pass int) (bool, Reason, error) {
	logger := s.logger.With("task", task.ShortID(), "pass", pass)

	persisted, _, err := s.store.Load(ctx, task.Fingerprint())
	if err != nil {
		return false, "", err
	}

	decision, err := Detect(ctx, s.fp, s.baseDir, task, persisted)
	if err != nil {
		return false, "", err
	}
	if !decision.Run {
		logger.Debug("task up to date", "command", task.Command)
		return false, decision.Reason, nil
	}

	logger.Info("task starting", "command", task.Command, "reason", string(decision.Reason))
	if err := s.runner.Run(ctx, s.baseDir, task.Command); err != nil {
		return false, decision.Reason, err
	}

	// Both fingerprints are recomputed after the command ran: the command's
	// own writes (including to files it watches) must not count as changes on
	// the next evaluation, or the loop would never reach a fixed point.
	outputFP, err := s.fp.Fingerprint(ctx, s.baseDir, task.OutputPatterns)
	if err != nil {
		return false, decision.Reason, err
	}
	if task.HasOutputs() && outputFP == "" {
		return false, decision.Reason, &executor.ExecError{Kind: executor.NoOutputsProduced, Command: task.Command}
	}
	inputFP, err := s.fp.Fingerprint(ctx, s.baseDir, task.InputPatterns)
	if err != nil {
		return false, decision.Reason, err
	}

	if err := s.store.Save(ctx, task.Fingerprint(), state.Entry{
		Command: task.Command,
		Input:   inputFP,
		Output:  outputFP,
	}); err != nil {
		return false, decision.Reason, err
	}

	logger.Info("task finished", "command", task.Command)
	return true, decision.Reason, nil
}
