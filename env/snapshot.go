// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import "strings"

// Snapshot is an immutable copy of an environment, taken once. Lookups
// against a Snapshot always see the state at capture time, even if the
// underlying environment changes afterwards.
type Snapshot struct {
	vars map[string]string
}

// Capture copies the reader's environment into a new Snapshot.
// Malformed entries without a "=" separator are skipped.
func Capture(r Reader) *Snapshot {
	vars := make(map[string]string)
	for _, pair := range r.Environ() {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		vars[key] = value
	}
	return &Snapshot{vars: vars}
}

// SnapshotOf builds a Snapshot from an explicit mapping. The map is copied,
// so callers may reuse or mutate it afterwards without affecting the
// Snapshot.
func SnapshotOf(vars map[string]string) *Snapshot {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return &Snapshot{vars: copied}
}

// Lookup returns the captured value for a variable and whether it was
// present at capture time.
func (s *Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Len returns the number of captured variables.
func (s *Snapshot) Len() int {
	return len(s.vars)
}
