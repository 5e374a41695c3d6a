// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config is a read-only accessor for the deployment metadata a hosting
platform injects into the process environment: project identity, build and
runtime phase, service relationships, HTTP routes, user-defined variables,
and the application manifest.

# Phases

The platform exports metadata twice: once during the build phase, when the
application tree is assembled, and again (with more variables) at runtime.
A Config distinguishes three situations:

  - not on the platform at all: IsValidPlatform reports false and every
    gated accessor returns ErrNotOnPlatform;
  - build phase: InBuild reports true, runtime-only data (routes,
    relationships, runtime properties) is gated behind *BuildPhaseError;
  - runtime: everything is available.

# Construction

New captures an immutable snapshot of the environment and decodes the
structured variables (ROUTES, RELATIONSHIPS, VARIABLES, APPLICATION) from
base64-wrapped JSON exactly once. A malformed blob aborts construction with
a *DecodeError rather than leaving a partially-populated accessor behind.

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if !cfg.IsValidPlatform() {
		// running outside the platform, fall back to local settings
	}
	creds, err := cfg.Credentials("database")

All fields are populated at construction and never mutated, so a Config is
safe for concurrent use. Re-create the accessor to observe a changed
environment.

# Testing

Inject an environment instead of reading the real one:

	cfg, err := config.New(config.WithEnviron(map[string]string{
		"PLATFORM_APPLICATION_NAME": "app",
	}))
*/
package config
