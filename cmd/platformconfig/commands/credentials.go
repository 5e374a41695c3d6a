// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newCredentialsCommand(logger *slog.Logger) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "credentials <relationship>",
		Short: "Show the credentials for a relationship",
		Long: `Show the credential set for a named relationship, as defined in the
application configuration. Relationships only exist at runtime.

The credentials describe how to reach the backing service; this command
never connects to it.`,
		Example: `  # Credentials for the "database" relationship
  platformconfig credentials database

  # A secondary credential set, if the relationship defines one
  platformconfig credentials database --index 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(logger)
			if err != nil {
				return err
			}

			creds, err := cfg.CredentialsAt(args[0], index)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, creds)
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "index within the relationship's credential list")

	return cmd
}
