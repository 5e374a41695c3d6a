// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for the accessor.
var (
	// ErrNotOnPlatform is returned when an operation requires platform
	// metadata and the process is not running on the platform at all.
	ErrNotOnPlatform = errors.New("not running on a platform environment")

	// ErrBuildPhase is the sentinel wrapped by *BuildPhaseError.
	ErrBuildPhase = errors.New("not available during the build phase")

	// ErrDecode is the sentinel wrapped by *DecodeError.
	ErrDecode = errors.New("malformed platform variable")
)

// BuildPhaseError is returned when runtime-only data is requested during
// the build phase.
type BuildPhaseError struct {
	// Subject names the data that was requested, e.g. "routes".
	Subject string
}

// Error implements the error interface.
func (e *BuildPhaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Subject, ErrBuildPhase)
}

// Unwrap returns ErrBuildPhase for errors.Is compatibility.
func (e *BuildPhaseError) Unwrap() error {
	return ErrBuildPhase
}

// DecodeError reports a structured variable whose base64 or JSON payload
// could not be decoded. When returned from New, no accessor was produced.
type DecodeError struct {
	// Variable is the unprefixed variable name, e.g. "ROUTES".
	Variable string
	original error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %s", e.Variable, e.original)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.original
}

// newDecodeError wraps a decode failure with its variable name and the
// ErrDecode sentinel.
func newDecodeError(variable string, err error) error {
	return &DecodeError{Variable: variable, original: fmt.Errorf("%w: %w", ErrDecode, err)}
}

// UnknownPropertyError is returned by Property for names outside both
// property catalogs.
type UnknownPropertyError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("no such property %q", e.Name)
}

// RouteNotFoundError is returned by RouteByID when no route carries the
// requested id.
type RouteNotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route with id %q", e.ID)
}

// RelationshipNotFoundError is returned when the requested relationship is
// not defined in the application configuration.
type RelationshipNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *RelationshipNotFoundError) Error() string {
	return fmt.Sprintf("no relationship named %q", e.Name)
}

// RelationshipIndexError is returned when the requested index is out of
// bounds for a relationship's credential list.
type RelationshipIndexError struct {
	Name  string
	Index int
	Len   int
}

// Error implements the error interface.
func (e *RelationshipIndexError) Error() string {
	return fmt.Sprintf("relationship %q has no index %d (%d credential sets defined)", e.Name, e.Index, e.Len)
}
