// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapture(t *testing.T) {
	t.Parallel()

	t.Run("captures all well-formed pairs", func(t *testing.T) {
		t.Parallel()
		snap := Capture(MapReader{
			"PLATFORM_PROJECT": "my-project",
			"PATH":             "/usr/bin",
			"EMPTY":            "",
		})

		assert.Equal(t, 3, snap.Len())

		v, ok := snap.Lookup("PLATFORM_PROJECT")
		assert.True(t, ok)
		assert.Equal(t, "my-project", v)

		v, ok = snap.Lookup("EMPTY")
		assert.True(t, ok, "empty value is still present")
		assert.Equal(t, "", v)

		_, ok = snap.Lookup("MISSING")
		assert.False(t, ok)
	})

	t.Run("value containing equals sign survives round trip", func(t *testing.T) {
		t.Parallel()
		snap := Capture(MapReader{"TOKEN": "a=b=c"})

		v, ok := snap.Lookup("TOKEN")
		assert.True(t, ok)
		assert.Equal(t, "a=b=c", v)
	})

	t.Run("skips malformed entries", func(t *testing.T) {
		t.Parallel()
		snap := Capture(pairReader{"WELL=formed", "malformed"})

		assert.Equal(t, 1, snap.Len())
		v, ok := snap.Lookup("WELL")
		assert.True(t, ok)
		assert.Equal(t, "formed", v)
	})
}

func TestSnapshotOf_CopiesInput(t *testing.T) {
	t.Parallel()

	source := map[string]string{"KEY": "original"}
	snap := SnapshotOf(source)

	source["KEY"] = "mutated"
	source["NEW"] = "added"

	v, ok := snap.Lookup("KEY")
	assert.True(t, ok)
	assert.Equal(t, "original", v, "snapshot must not observe source mutation")

	_, ok = snap.Lookup("NEW")
	assert.False(t, ok)
}

// pairReader serves raw "key=value" pairs, including malformed ones that
// MapReader cannot express.
type pairReader []string

func (pairReader) Getenv(string) string { return "" }

func (p pairReader) Environ() []string { return p }
