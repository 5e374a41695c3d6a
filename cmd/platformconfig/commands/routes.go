// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRoutesCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "routes [id]",
		Short: "Show the route table, or a single route by id",
		Long: `Show the full route table (URL to route definition), or a single route
looked up by its id. Routes only exist at runtime.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(logger)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				route, err := cfg.RouteByID(args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), outputFormat, route)
			}

			routes, err := cfg.Routes()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, routes)
		},
	}
}
