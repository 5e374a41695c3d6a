// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access
type Reader interface {
	// Getenv returns the value of a single variable, or "" if unset.
	Getenv(key string) string

	// Environ returns the full environment as "key=value" pairs.
	Environ() []string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ returns the process environment as "key=value" pairs
func (*OSReader) Environ() []string {
	return os.Environ()
}

// MapReader implements Reader over a fixed map. It is the injection point
// for tests and for callers that assemble an environment by hand.
type MapReader map[string]string

// Getenv returns the mapped value for key, or "" if the key is absent
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// Environ returns the map contents as "key=value" pairs. Order is not
// specified.
func (m MapReader) Environ() []string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	return pairs
}
