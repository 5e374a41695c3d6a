// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// noValidation is the validator used when schema validation is disabled.
func noValidation([]byte) error { return nil }

// decodeTable decodes one structured platform variable into dst and returns
// the raw JSON bytes. It returns (nil, nil) when the variable is unset or
// empty: an undecoded table stays empty, and callers distinguish "empty"
// from "unavailable in this phase" via the phase predicates.
func (c *Config) decodeTable(name string, dst any, validate func([]byte) error) ([]byte, error) {
	raw := c.value(name)
	if raw == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, newDecodeError(name, err)
	}
	if err := validate(data); err != nil {
		return nil, newDecodeError(name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, newDecodeError(name, err)
	}

	c.log.Debug("decoded platform variable", "variable", name, "bytes", len(data))
	return data, nil
}

// Decode reverses the platform's encoding of a structured variable:
// base64-wrapped JSON. It returns the decoded value with plain JSON
// semantics (map[string]any, []any, string, float64, bool, or nil) and
// wraps any failure in ErrDecode.
func Decode(raw string) (any, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// objectKeyOrder returns the top-level keys of a JSON object in document
// order. json.Unmarshal loses map ordering, but route lookup needs it so
// that the first matching id in the decoded document wins.
func objectKeyOrder(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}
		keys = append(keys, key)

		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
