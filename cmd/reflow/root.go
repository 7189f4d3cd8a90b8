package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var taskfileFlag string
	var configFlag string

	ctx := newCommandContext(&taskfileFlag, &configFlag)

	rootCmd := &cobra.Command{
		Use:           "reflow",
		Short:         "Incremental task runner that re-executes commands until nothing changes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&taskfileFlag, "taskfile", "f", "", "Taskfile path (default reflow.tasks)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Tool settings file path")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
