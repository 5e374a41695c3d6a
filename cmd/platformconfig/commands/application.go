// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newApplicationCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "application",
		Short: "Show the application manifest",
		Long: `Show the application definition: approximately the application
configuration file in nested form, augmented by the platform during build
and deploy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := newConfig(logger)
			if err != nil {
				return err
			}

			app, err := cfg.Application()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, app)
		},
	}
}
