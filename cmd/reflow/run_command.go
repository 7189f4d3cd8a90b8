package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"reflow/internal/engine"
	"reflow/internal/executor"
	"reflow/internal/fingerprint"
	"reflow/internal/logging"
	"reflow/internal/runlock"
	"reflow/internal/state"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run stale tasks until a full pass executes nothing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			taskfilePath, tasks, err := ctx.loadTasks()
			if err != nil {
				return err
			}
			baseDir := filepath.Dir(taskfilePath)

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			cacheDir := cfg.CacheDirFor(taskfilePath)
			lock, err := runlock.Acquire(cacheDir)
			if err != nil {
				return err
			}
			defer func() {
				_ = lock.Release()
			}()

			store, err := state.Open(cacheDir)
			if err != nil {
				return err
			}
			defer store.Close()

			runID := uuid.NewString()
			logger = logger.With("run_id", shortRunID(runID))

			scheduler, err := engine.New(
				baseDir, tasks, store,
				fingerprint.NewHasher(cfg.Run.HashWorkers),
				executor.NewShell(),
				engine.WithLogger(logger),
				engine.WithMaxPasses(cfg.Run.MaxPasses),
			)
			if err != nil {
				return err
			}

			startedAt := time.Now()
			outcome, runErr := scheduler.Run(cmd.Context())

			record := state.RunRecord{
				ID:         runID,
				StartedAt:  startedAt,
				FinishedAt: time.Now(),
				Passes:     outcome.Passes,
				Executed:   outcome.Executed,
				Status:     state.RunStatusConverged,
			}
			if runErr != nil {
				record.Status = state.RunStatusFailed
				record.Detail = runErr.Error()
			}
			if err := store.RecordRun(cmd.Context(), record); err != nil {
				logger.Warn("record run history", "error", err)
			}

			if runErr != nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			if outcome.Executed == 0 {
				fmt.Fprintln(out, "Nothing to do; all tasks up to date.")
				return nil
			}
			fmt.Fprintln(out, renderRunSummary(outcome))
			return nil
		},
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func renderRunSummary(outcome engine.Outcome) string {
	rows := make([][]string, 0, len(outcome.Results))
	for _, res := range outcome.Results {
		if !res.Ran {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", res.Pass),
			res.Command,
			string(res.Reason),
		})
	}
	headers := []string{"Pass", "Command", "Reason"}
	summary := renderTable(headers, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
	return fmt.Sprintf("%s\n%d task execution(s) across %d pass(es).",
		summary, outcome.Executed, outcome.Passes)
}

// stdoutIsTerminal reports whether summary tables may use interactive styling.
func stdoutIsTerminal() bool {
	return isTerminal(os.Stdout.Fd())
}
