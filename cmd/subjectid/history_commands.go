package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subjectid/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		limitFlag int
		jsonFlag  bool
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					strconv.FormatInt(run.ID, 10),
					run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					run.Source,
					run.Method,
					strconv.Itoa(run.RecordCount),
					strconv.Itoa(run.RejectedCount),
					strconv.Itoa(run.DuplicateCount),
					run.Username,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "When", "Source", "Method", "Records", "Rejected", "Dupes", "User"},
				rows, 1, 5, 6, 7,
			))
			return nil
		},
	}

	historyCmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum runs to list (0 lists all)")
	historyCmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit runs as JSON")

	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d run(s)\n", removed)
			return nil
		},
	}
}
