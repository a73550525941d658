package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/iconsmith/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd)
		},
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryRemoveCmd())

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd)
		},
	}
}

func newHistoryRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewStore(defaultHistoryPath())
			if err != nil {
				return err
			}
			if err := store.Remove(args[0]); err != nil {
				return err
			}
			return store.Save()
		},
	}
}

func runHistoryList(cmd *cobra.Command) error {
	store, err := history.NewStore(defaultHistoryPath())
	if err != nil {
		return err
	}

	entries := store.List()
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = fmt.Sprintf("%d error(s)", e.ErrorCount)
		}
		fmt.Fprintf(out, "%s  %-20s %-30s %3d assets  %s  %s\n",
			e.ID, e.Name, e.OutputDir, e.AssetCount, status,
			e.GeneratedAt.Local().Format(time.RFC3339))
	}
	return nil
}
