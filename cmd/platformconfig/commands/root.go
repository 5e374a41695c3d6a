// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package commands implements the platformconfig CLI. It only populates
// the accessor's input mapping and renders its output; all contracts live
// in the config package.
package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hostgrid/platformconfig/config"
)

var (
	// Global flags
	envPrefix    string
	outputFormat string
	strict       bool
	verbose      bool
)

// Execute runs the root command
func Execute(ctx context.Context, version string, logger *slog.Logger) error {
	rootCmd := newRootCommand(version, logger)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version string, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "platformconfig",
		Short: "Inspect platform-injected deployment metadata",
		Long: `platformconfig reads the deployment metadata the hosting platform injects
into the process environment and prints it in a readable form.

It understands the build/runtime phase split: routes, relationships, and
runtime properties are only shown once the application is deployed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVar(&envPrefix, "prefix", config.DefaultPrefix, "environment variable prefix")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "output format (json or yaml)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "validate decoded payloads against their JSON schemas")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decode steps")

	// Add subcommands
	rootCmd.AddCommand(newPhaseCommand(logger))
	rootCmd.AddCommand(newPropertiesCommand(logger))
	rootCmd.AddCommand(newRoutesCommand(logger))
	rootCmd.AddCommand(newCredentialsCommand(logger))
	rootCmd.AddCommand(newVariablesCommand(logger))
	rootCmd.AddCommand(newApplicationCommand(logger))

	return rootCmd
}

// newConfig builds the accessor from the real process environment and the
// global flags.
func newConfig(logger *slog.Logger) (*config.Config, error) {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if strict {
		opts = append(opts, config.WithSchemaValidation())
	}
	if verbose {
		opts = append(opts, config.WithLogger(logger))
	}
	return config.New(opts...)
}
