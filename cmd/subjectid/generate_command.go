package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"subjectid/internal/applock"
	"subjectid/internal/auth"
	"subjectid/internal/config"
	"subjectid/internal/export"
	"subjectid/internal/history"
	"subjectid/internal/ingest"
	"subjectid/internal/pipeline"
)

type generateOutput struct {
	Source         string                  `json:"source"`
	Method         string                  `json:"method"`
	Output         string                  `json:"output,omitempty"`
	Records        []pipeline.Record       `json:"records"`
	Duplicates     []bool                  `json:"duplicates"`
	Rejected       []pipeline.InvalidEntry `json:"rejected,omitempty"`
	DuplicateCount int                     `json:"duplicate_count"`
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		inputFlag  string
		nameFlags  []string
		methodFlag string
		formatFlag string
		outputFlag string
		sortFlag   bool
		tidyFlag   bool
		userFlag   string
		jsonFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate identifiers for a list of names and export the mapping",
		Long: `Generate reads names from an input file (CSV, TXT, or XLSX), runs them
through the identifier pipeline, and exports the name-to-ID mapping. Names
given with --names are appended after the file contents; either source alone
is enough. Rejected entries and duplicate flags are reported, never silently
dropped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			session, err := gate(cfg, userFlag)
			if err != nil {
				return err
			}

			raw, source, err := collectNames(cfg, inputFlag, nameFlags, cmd)
			if err != nil {
				return err
			}
			if len(raw) == 0 {
				return errors.New("no names to process (use --input or --names)")
			}

			methodToken := methodFlag
			if methodToken == "" {
				methodToken = cfg.Generate.DefaultMethod
			}
			method, err := pipeline.ParseMethod(methodToken)
			if err != nil {
				return err
			}

			if tidyFlag {
				raw = pipeline.Tidy(raw)
			}

			result, err := pipeline.Run(raw, method)
			if err != nil {
				return err
			}
			logger.Info("pipeline complete",
				"source", source,
				"method", string(method),
				"input", len(raw),
				"records", len(result.Records),
				"rejected", len(result.Rejected),
				"duplicates", result.DuplicateCount(),
			)

			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			opts := export.Options{
				Delimiter:  delimiterRune(cfg),
				SortByName: sortFlag || cfg.Generate.SortOutput,
			}

			lock := applock.New(cfg.LockPath())
			if err := lock.Acquire(); err != nil {
				return err
			}
			defer func() { _ = lock.Release() }()

			outputPath := ""
			if outputFlag == "-" {
				if err := export.Write(cmd.OutOrStdout(), format, result.Records, opts); err != nil {
					return err
				}
			} else {
				outputPath, err = resolveOutputPath(outputFlag, format)
				if err != nil {
					return err
				}
				if err := export.ToFile(outputPath, format, result.Records, opts); err != nil {
					return err
				}
			}

			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()
			if _, err := store.RecordRun(cmd.Context(), history.Run{
				Source:         source,
				Method:         string(method),
				InputCount:     len(raw),
				RecordCount:    len(result.Records),
				RejectedCount:  len(result.Rejected),
				DuplicateCount: result.DuplicateCount(),
				Username:       session.User,
				SessionToken:   session.Token,
				OutputPath:     outputPath,
			}); err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, generateOutput{
					Source:         source,
					Method:         string(method),
					Output:         outputPath,
					Records:        result.Records,
					Duplicates:     result.Duplicates,
					Rejected:       result.Rejected,
					DuplicateCount: result.DuplicateCount(),
				})
			}
			if outputFlag != "-" {
				printSummary(cmd, result, source, string(method), outputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input file (.csv, .txt, or .xlsx)")
	cmd.Flags().StringArrayVarP(&nameFlags, "names", "n", nil, "Name to process (repeatable, appended after --input)")
	cmd.Flags().StringVarP(&methodFlag, "method", "m", "", "Identifier method: md5, sha1, sha256, sequential, uuid")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "csv", "Export format: csv or xlsx")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default subject_id_mapping.<format>, - for stdout CSV)")
	cmd.Flags().BoolVar(&sortFlag, "sort", false, "Sort exported rows by name")
	cmd.Flags().BoolVar(&tidyFlag, "tidy", false, "Clean names before processing (collapse whitespace, title case)")
	cmd.Flags().StringVarP(&userFlag, "user", "u", "", "Username for the credential gate (password via SUBJECTID_PASSWORD)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the full result as JSON")

	return cmd
}

// gate runs the credential check when the config enables it. With auth
// disabled it returns an empty session.
func gate(cfg *config.Config, username string) (auth.Session, error) {
	if !cfg.Auth.Enabled {
		return auth.Session{}, nil
	}
	if username == "" {
		return auth.Session{}, errors.New("authentication is enabled; supply --user and set SUBJECTID_PASSWORD")
	}
	return auth.Authenticate(auth.NewConfigProvider(cfg), username, os.Getenv("SUBJECTID_PASSWORD"))
}

// collectNames gathers raw names from the input file and/or --names flags,
// returning the list and a source label for history.
func collectNames(cfg *config.Config, input string, manual []string, cmd *cobra.Command) ([]string, string, error) {
	if input == "" && len(manual) == 0 {
		return nil, "", nil
	}

	var raw []string
	source := "manual"
	if input != "" {
		path, err := config.ExpandPath(input)
		if err != nil {
			return nil, "", err
		}
		parsed, err := ingest.ParseFile(path, ingest.Limits{
			MaxNames: cfg.Limits.MaxNames,
			MaxBytes: int64(cfg.Limits.MaxFileSizeMiB) * 1024 * 1024,
		})
		if err != nil {
			return nil, "", err
		}
		if parsed.Truncated {
			fmt.Fprintf(cmd.ErrOrStderr(), "Input contains %d names; keeping the first %d (limits.max_names)\n",
				parsed.Total, len(parsed.Names))
		}
		raw = parsed.Names
		source = filepath.Base(path)
		if len(manual) > 0 {
			source += "+manual"
		}
	}
	raw = append(raw, manual...)
	return raw, source, nil
}

func resolveOutputPath(flag string, format export.Format) (string, error) {
	if flag == "" {
		flag = export.DefaultFilename(format)
	}
	return config.ExpandPath(flag)
}

func delimiterRune(cfg *config.Config) rune {
	for _, r := range cfg.Generate.CSVDelimiter {
		return r
	}
	return ','
}

func printSummary(cmd *cobra.Command, result pipeline.Result, source, method, outputPath string) {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"Source", source},
		{"Method", method},
		{"Records", strconv.Itoa(len(result.Records))},
		{"Rejected", strconv.Itoa(len(result.Rejected))},
		{"Duplicates", strconv.Itoa(result.DuplicateCount())},
		{"Output", outputPath},
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))

	for _, rejected := range result.Rejected {
		fmt.Fprintf(cmd.ErrOrStderr(), "rejected %s\n", rejected)
	}
	if count := result.DuplicateCount(); count > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d duplicate name(s) flagged; identical names kept their own rows\n", count)
	}
}
