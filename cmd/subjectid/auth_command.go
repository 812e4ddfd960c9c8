package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subjectid/internal/auth"
)

func newAuthCommand(ctx *commandContext) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Credential gate utilities",
	}
	authCmd.AddCommand(newAuthCheckCommand(ctx))
	return authCmd
}

func newAuthCheckCommand(ctx *commandContext) *cobra.Command {
	var (
		userFlag string
		jsonFlag bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify credentials against the configured user table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Auth.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Authentication is disabled (auth.enabled = false)")
				return nil
			}
			if userFlag == "" {
				return errors.New("supply --user and set SUBJECTID_PASSWORD")
			}

			session, err := auth.Authenticate(auth.NewConfigProvider(cfg), userFlag, os.Getenv("SUBJECTID_PASSWORD"))
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, session)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Authenticated %s (role %s)\n", session.User, session.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userFlag, "user", "u", "", "Username to verify (password via SUBJECTID_PASSWORD)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the session as JSON")

	return cmd
}
