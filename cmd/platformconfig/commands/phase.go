// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hostgrid/platformconfig/config"
)

// phaseInfo is the rendered output of the phase command.
type phaseInfo struct {
	OnPlatform bool   `json:"on_platform" yaml:"on_platform"`
	Phase      string `json:"phase" yaml:"phase"`
	Enterprise bool   `json:"enterprise" yaml:"enterprise"`
	Production bool   `json:"production" yaml:"production"`
}

func newPhaseCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "phase",
		Short: "Show the detected deployment phase",
		Long: `Show whether the process is running on the platform at all and, if so,
whether it is in the build phase or the runtime phase.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := newConfig(logger)
			if err != nil {
				return err
			}

			info := phaseInfo{
				OnPlatform: cfg.IsValidPlatform(),
				Phase:      phaseName(cfg),
				Enterprise: cfg.OnEnterprise(),
				Production: cfg.OnProduction(),
			}
			return render(cmd.OutOrStdout(), outputFormat, info)
		},
	}
}

func phaseName(cfg *config.Config) string {
	switch {
	case cfg.InBuild():
		return "build"
	case cfg.InRuntime():
		return "runtime"
	default:
		return "none"
	}
}
