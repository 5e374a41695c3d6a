// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	// Values are given in JSON-normal form (float64 numbers, []any,
	// map[string]any) so they compare equal after the round trip.
	tests := []struct {
		name  string
		value any
	}{
		{name: "object", value: map[string]any{"key": "value", "n": float64(3)}},
		{name: "array", value: []any{"a", float64(1), true}},
		{name: "nested", value: map[string]any{
			"list": []any{map[string]any{"inner": nil}},
			"obj":  map[string]any{"deep": map[string]any{"er": float64(0.5)}},
		}},
		{name: "string", value: "just a string"},
		{name: "number", value: float64(12.75)},
		{name: "boolean", value: false},
		{name: "null", value: nil},
		{name: "empty object", value: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			encoded := base64.StdEncoding.EncodeToString(data)

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.value, decoded)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	t.Run("invalid base64", func(t *testing.T) {
		t.Parallel()
		_, err := Decode("!!! definitely not base64 !!!")
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("valid base64, invalid JSON", func(t *testing.T) {
		t.Parallel()
		encoded := base64.StdEncoding.EncodeToString([]byte("{truncated"))
		_, err := Decode(encoded)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("empty input decodes to nothing", func(t *testing.T) {
		t.Parallel()
		_, err := Decode("")
		assert.ErrorIs(t, err, ErrDecode, "empty string is not a JSON document")
	})
}

func TestObjectKeyOrder(t *testing.T) {
	t.Parallel()

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()
		doc := `{"zebra": 1, "apple": {"nested": [1, 2, {"deep": true}]}, "mango": [{}, []]}`

		keys, err := objectKeyOrder([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()
		keys, err := objectKeyOrder([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("rejects non-object documents", func(t *testing.T) {
		t.Parallel()
		_, err := objectKeyOrder([]byte(`[1, 2, 3]`))
		assert.Error(t, err)

		_, err = objectKeyOrder([]byte(`"scalar"`))
		assert.Error(t, err)
	})

	t.Run("rejects truncated documents", func(t *testing.T) {
		t.Parallel()
		_, err := objectKeyOrder([]byte(`{"key": {"unclosed": 1`))
		assert.Error(t, err)
	})
}
