// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"slices"
)

// Direct property catalogs. Keys are the property names accepted by
// Property; values are the environment variable suffixes that back them.
// Both maps are read-only after package initialization.
var (
	// buildProperties are available during both the build and runtime
	// phases.
	buildProperties = map[string]string{
		"project":         "PROJECT",
		"appDir":          "APP_DIR",
		"applicationName": "APPLICATION_NAME",
		"treeId":          "TREE_ID",
		"entropy":         "PROJECT_ENTROPY",
	}

	// runtimeProperties only exist once the application is deployed.
	runtimeProperties = map[string]string{
		"branch":       "BRANCH",
		"environment":  "ENVIRONMENT",
		"documentRoot": "DOCUMENT_ROOT",
		"smtpHost":     "SMTP_HOST",
	}
)

// PropertyNames returns the names of every catalog property, sorted.
// Whether a given property can actually be read depends on the phase.
func PropertyNames() []string {
	names := make([]string, 0, len(buildProperties)+len(runtimeProperties))
	for name := range buildProperties {
		names = append(names, name)
	}
	for name := range runtimeProperties {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Property resolves a named scalar property from the catalogs. The second
// return reports whether the backing environment variable is set at all:
// a resolvable property whose variable the platform did not populate
// yields ("", false, nil).
//
// It returns ErrNotOnPlatform outside the platform, a *BuildPhaseError for
// runtime-only properties during build, and an *UnknownPropertyError for
// names in neither catalog.
func (c *Config) Property(name string) (string, bool, error) {
	if !c.valid {
		return "", false, ErrNotOnPlatform
	}

	if suffix, ok := buildProperties[name]; ok {
		v, present := c.lookup(suffix)
		return v, present, nil
	}

	suffix, ok := runtimeProperties[name]
	if !ok {
		return "", false, &UnknownPropertyError{Name: name}
	}
	if c.inBuild {
		return "", false, &BuildPhaseError{Subject: fmt.Sprintf("property %q", name)}
	}
	v, present := c.lookup(suffix)
	return v, present, nil
}

// HasProperty reports whether a property resolves to a set environment
// variable in the current phase. Unlike Property it never fails: unknown
// names, the wrong phase, and running outside the platform all simply
// report false.
func (c *Config) HasProperty(name string) bool {
	_, present, err := c.Property(name)
	return err == nil && present
}

// direct resolves a catalog property, folding absence into the zero value.
func (c *Config) direct(name string) (string, error) {
	v, _, err := c.Property(name)
	return v, err
}

// Project returns the project ID.
func (c *Config) Project() (string, error) {
	return c.direct("project")
}

// ApplicationName returns the name of the application, as defined in its
// configuration.
func (c *Config) ApplicationName() (string, error) {
	return c.direct("applicationName")
}

// TreeID returns the ID of the application tree before it was built: a
// hash of the application's files in the repository.
func (c *Config) TreeID() (string, error) {
	return c.direct("treeId")
}

// AppDir returns the absolute path to the application directory.
func (c *Config) AppDir() (string, error) {
	return c.direct("appDir")
}

// Entropy returns a random string generated once per project, useful for
// deriving hash keys.
func (c *Config) Entropy() (string, error) {
	return c.direct("entropy")
}

// Branch returns the Git branch name. Runtime only.
func (c *Config) Branch() (string, error) {
	return c.direct("branch")
}

// Environment returns the environment ID (usually the Git branch plus a
// hash). Runtime only.
func (c *Config) Environment() (string, error) {
	return c.direct("environment")
}

// DocumentRoot returns the absolute path to the web root. Runtime only.
func (c *Config) DocumentRoot() (string, error) {
	return c.direct("documentRoot")
}

// SMTPHost returns the hostname of the platform's default SMTP server, or
// an empty string if outgoing email is disabled. Runtime only.
func (c *Config) SMTPHost() (string, error) {
	return c.direct("smtpHost")
}
