package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"reflow/internal/engine"
	"reflow/internal/fingerprint"
	"reflow/internal/state"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var historyLimit int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show task staleness and recent runs without executing anything",
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

			store, err := state.Open(cfg.CacheDirFor(taskfilePath))
			if err != nil {
				return err
			}
			defer store.Close()

			hasher := fingerprint.NewHasher(cfg.Run.HashWorkers)
			out := cmd.OutOrStdout()

			rows := make([][]string, 0, len(tasks))
			for _, task := range tasks {
				persisted, _, err := store.Load(cmd.Context(), task.Fingerprint())
				if err != nil {
					return err
				}
				decision, err := engine.Detect(cmd.Context(), hasher, baseDir, task, persisted)
				if err != nil {
					return err
				}
				verdict := "current"
				if decision.Run {
					verdict = "stale"
				}
				rows = append(rows, []string{task.ShortID(), task.Command, verdict, string(decision.Reason)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Task", "Command", "State", "Reason"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			runs, err := store.RecentRuns(cmd.Context(), historyLimit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}
			runRows := make([][]string, 0, len(runs))
			for _, rec := range runs {
				runRows = append(runRows, []string{
					shortRunID(rec.ID),
					rec.StartedAt.Local().Format(time.DateTime),
					fmt.Sprintf("%d", rec.Passes),
					fmt.Sprintf("%d", rec.Executed),
					rec.Status,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Started", "Passes", "Executed", "Status"},
				runRows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&historyLimit, "history", 10, "Number of recent runs to show")
	return cmd
}
