// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package schema validates the decoded structured platform variables
// against embedded JSON Schemas. The platform's payloads are normally
// trusted; validation exists to produce actionable diagnostics when an
// injection is broken, e.g. by a misconfigured local emulator.
package schema

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/routes.schema.json data/relationships.schema.json
var embeddedSchemaFS embed.FS

// ValidateRoutes validates raw routes JSON bytes against the routes schema:
// an object mapping URLs to route definition objects.
func ValidateRoutes(data []byte) error {
	return validateAgainstSchema(data, "data/routes.schema.json", "routes schema validation failed")
}

// ValidateRelationships validates raw relationships JSON bytes against the
// relationships schema: an object mapping relationship names to arrays of
// credential objects.
func ValidateRelationships(data []byte) error {
	return validateAgainstSchema(data, "data/relationships.schema.json", "relationships schema validation failed")
}

// validateAgainstSchema validates data against a named embedded schema file.
func validateAgainstSchema(data []byte, schemaFile, errPrefix string) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errPrefix, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors(errPrefix, msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a
// numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(":")
	for i, msg := range msgs {
		b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, msg))
	}
	return fmt.Errorf("%s", b.String())
}
