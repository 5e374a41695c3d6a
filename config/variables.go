// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

// VariableTable maps user-defined variable names to their values, which
// may be strings, numbers, booleans, or nested structures. Available in
// both phases, possibly with different contents.
type VariableTable map[string]any

// Application is the decoded application manifest: approximately the
// application configuration file in nested form, augmented by the platform
// during build and deploy.
type Application map[string]any

// Variable returns the named user-defined variable, or def when the
// variable is absent or the process is not on the platform. It never
// fails, making it the probing counterpart to Variables.
//
// Variables prefixed with "env:" are also exported as plain environment
// variables; those are better read directly.
func (c *Config) Variable(name string, def any) any {
	if !c.valid {
		return def
	}
	v, ok := c.variables[name]
	if !ok {
		return def
	}
	return v
}

// Variables returns the full variable table, for callers that scan the
// whole list rather than fetch one value. It returns ErrNotOnPlatform
// outside the platform.
func (c *Config) Variables() (VariableTable, error) {
	if !c.valid {
		return nil, ErrNotOnPlatform
	}
	return c.variables, nil
}

// Application returns the application manifest. It returns
// ErrNotOnPlatform outside the platform.
func (c *Config) Application() (Application, error) {
	if !c.valid {
		return nil, ErrNotOnPlatform
	}
	return c.application, nil
}
