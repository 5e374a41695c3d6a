// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, plus an immutable Snapshot of a captured environment.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

Use Capture to copy an environment into an immutable Snapshot:

	snap := env.Capture(&env.OSReader{})
	value, ok := snap.Lookup("MY_VAR")

# Testing

The Reader interface allows injecting a substitute in tests to avoid relying
on real environment variables. MapReader covers most cases:

	reader := env.MapReader{"MY_VAR": "test-value"}

A generated mock is available in the mocks sub-package for tests that need
to assert on call behavior:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Environ().Return([]string{"MY_VAR=test-value"})

# Design

Production code accepts an env.Reader or a map of variables; the accessor in
the config package captures a Snapshot at construction and never observes
later environment mutation.
*/
package env
