// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReader_Getenv(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	// Cannot run in parallel because it modifies environment variables
	testKey := "TEST_ENV_VARIABLE_FOR_TESTING"
	testValue := "test_value_123"

	// Set an environment variable for testing
	originalValue, wasSet := os.LookupEnv(testKey)
	os.Setenv(testKey, testValue)
	t.Cleanup(func() {
		if wasSet {
			os.Setenv(testKey, originalValue)
		} else {
			os.Unsetenv(testKey)
		}
	})

	reader := &OSReader{}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "existing environment variable",
			key:  testKey,
			want: testValue,
		},
		{
			name: "non-existing environment variable",
			key:  "NONEXISTENT_ENV_VAR_TESTING_12345",
			want: "",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
	}

	for _, tt := range tests { //nolint:paralleltest // Test modifies environment variables
		t.Run(tt.name, func(t *testing.T) {
			// Cannot run in parallel because parent test modifies environment variables
			got := reader.Getenv(tt.key)
			if got != tt.want {
				t.Errorf("OSReader.Getenv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOSReader_Environ(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	testKey := "TEST_ENVIRON_VARIABLE_FOR_TESTING"
	os.Setenv(testKey, "present")
	t.Cleanup(func() { os.Unsetenv(testKey) })

	reader := &OSReader{}
	assert.Contains(t, reader.Environ(), testKey+"=present")
}

func TestMapReader(t *testing.T) {
	t.Parallel()

	reader := MapReader{
		"FIRST":  "1",
		"SECOND": "two",
		"EMPTY":  "",
	}

	t.Run("Getenv returns mapped values", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1", reader.Getenv("FIRST"))
		assert.Equal(t, "two", reader.Getenv("SECOND"))
		assert.Equal(t, "", reader.Getenv("EMPTY"))
		assert.Equal(t, "", reader.Getenv("MISSING"))
	})

	t.Run("Environ returns all pairs", func(t *testing.T) {
		t.Parallel()
		pairs := reader.Environ()
		assert.Len(t, pairs, 3)
		assert.ElementsMatch(t, []string{"FIRST=1", "SECOND=two", "EMPTY="}, pairs)
	})
}

// TestReader_InterfaceCompliance ensures both implementations satisfy Reader
func TestReader_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = MapReader{}
	// If this compiles, the test passes
}
