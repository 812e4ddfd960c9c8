package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subjectid/internal/config"
	"subjectid/internal/ingest"
	"subjectid/internal/pipeline"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var (
		limitFlag int
		jsonFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Show the names a file would contribute, with duplicate flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			parsed, err := ingest.ParseFile(path, ingest.Limits{
				MaxNames: cfg.Limits.MaxNames,
				MaxBytes: int64(cfg.Limits.MaxFileSizeMiB) * 1024 * 1024,
			})
			if err != nil {
				return err
			}

			names, rejected := pipeline.Normalize(parsed.Names)
			flags := pipeline.FlagDuplicates(names)

			if jsonFlag {
				return writeJSON(cmd, map[string]any{
					"format":     parsed.Format,
					"column":     parsed.Column,
					"total":      parsed.Total,
					"truncated":  parsed.Truncated,
					"names":      names,
					"duplicates": flags,
					"rejected":   rejected,
				})
			}

			out := cmd.OutOrStdout()
			shown := len(names)
			if limitFlag > 0 && shown > limitFlag {
				shown = limitFlag
			}

			if !writerIsTerminal(out) {
				for _, name := range names[:shown] {
					fmt.Fprintln(out, name)
				}
			} else {
				rows := make([][]string, 0, shown)
				for i := 0; i < shown; i++ {
					dupe := ""
					if flags[i] {
						dupe = "duplicate"
					}
					rows = append(rows, []string{strconv.Itoa(i + 1), names[i], dupe})
				}
				fmt.Fprintln(out, renderTable([]string{"#", "Name", "Flags"}, rows, 1))
			}

			if shown < len(names) {
				fmt.Fprintf(out, "Showing first %d of %d names\n", shown, len(names))
			}
			if parsed.Column != "" {
				fmt.Fprintf(out, "Matched column: %s\n", parsed.Column)
			}
			for _, entry := range rejected {
				fmt.Fprintf(cmd.ErrOrStderr(), "rejected %s\n", entry)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 10, "Maximum names to display (0 shows all)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the preview as JSON")

	return cmd
}
