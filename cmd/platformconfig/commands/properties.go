// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hostgrid/platformconfig/config"
)

func newPropertiesCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "Show the direct properties available in this phase",
		Long: `Show every catalog property whose backing variable is set. Runtime-only
properties (branch, environment, documentRoot, smtpHost) are omitted during
the build phase.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := newConfig(logger)
			if err != nil {
				return err
			}

			if !cfg.IsValidPlatform() {
				return config.ErrNotOnPlatform
			}

			available := map[string]string{}
			for _, name := range config.PropertyNames() {
				value, present, err := cfg.Property(name)
				if err != nil || !present {
					continue
				}
				available[name] = value
			}
			return render(cmd.OutOrStdout(), outputFormat, available)
		},
	}
}
