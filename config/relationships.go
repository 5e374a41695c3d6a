// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

// Credentials is one decoded credential set for a relationship. The
// contents are platform-defined (scheme, host, port, and so on) and
// opaque to the accessor; it never connects to the service they describe.
type Credentials map[string]any

// RelationshipTable maps relationship names to their ordered credential
// sets. Only available at runtime.
type RelationshipTable map[string][]Credentials

// Credentials returns the first credential set for the named relationship,
// as defined in the application configuration. It is shorthand for
// CredentialsAt(name, 0); today the platform always provisions exactly one
// credential set per relationship.
func (c *Config) Credentials(name string) (Credentials, error) {
	return c.CredentialsAt(name, 0)
}

// CredentialsAt returns the credential set at index for the named
// relationship.
//
// It returns ErrNotOnPlatform outside the platform, a *BuildPhaseError
// during build, a *RelationshipNotFoundError for an undefined relationship,
// and a *RelationshipIndexError when index is out of bounds for that
// relationship's credential list.
func (c *Config) CredentialsAt(name string, index int) (Credentials, error) {
	if !c.valid {
		return nil, ErrNotOnPlatform
	}
	if c.inBuild {
		return nil, &BuildPhaseError{Subject: "relationships"}
	}

	creds, ok := c.relationships[name]
	if !ok {
		return nil, &RelationshipNotFoundError{Name: name}
	}
	if index < 0 || index >= len(creds) {
		return nil, &RelationshipIndexError{Name: name, Index: index, Len: len(creds)}
	}
	return creds[index], nil
}
