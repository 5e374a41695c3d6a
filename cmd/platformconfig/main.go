// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"

	"github.com/hostgrid/platformconfig/cmd/platformconfig/commands"
	"github.com/hostgrid/platformconfig/env"
	"github.com/hostgrid/platformconfig/logging"
)

// Version is set via ldflags during build
var Version = "dev"

func main() {
	// Text output by default for interactive use; LOG_FORMAT/LOG_LEVEL
	// still win when set.
	opts := append([]logging.Option{logging.WithFormat(logging.FormatText)},
		logging.FromEnv(&env.OSReader{})...)
	logger := logging.New(opts...)

	if err := commands.Execute(context.Background(), Version, logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
