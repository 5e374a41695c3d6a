// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newVariablesCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "variables [name]",
		Short: "Show the user-defined variables, or a single variable by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(logger)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				value := cfg.Variable(args[0], nil)
				if value == nil {
					return fmt.Errorf("variable %q is not set", args[0])
				}
				return render(cmd.OutOrStdout(), outputFormat, value)
			}

			vars, err := cfg.Variables()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, vars)
		},
	}
}
