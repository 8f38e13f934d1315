// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validation for user-supplied
// configuration values.
//
// Column names end up in log lines, output headers, and error messages,
// so they are restricted to a conservative identifier shape. In
// particular a hyphen is rejected: it is the journey token delimiter,
// and a hyphenated name could not be told apart from joined values.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// columnPattern matches valid table column names.
// Allows: letters, digits, underscores; must start with a letter or
// underscore. Max length: 64 characters.
var columnPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// ValidateColumn validates a table column name.
//
// Valid names:
//   - 1-64 characters
//   - letters, digits, underscores
//   - first character a letter or underscore
//
// Returns an error if the name is invalid.
func ValidateColumn(name string) error {
	if name == "" {
		return fmt.Errorf("column name cannot be empty")
	}

	if !columnPattern.MatchString(name) {
		return fmt.Errorf("invalid column name: %q (must be 1-64 letters, digits, or underscores, not starting with a digit)", name)
	}

	return nil
}

// ValidateColumns validates multiple column names.
// Returns an error listing all invalid names if any fail validation.
func ValidateColumns(names []string) error {
	var invalid []string
	for _, n := range names {
		if err := ValidateColumn(n); err != nil {
			invalid = append(invalid, n)
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid column names: %v", invalid)
	}
	return nil
}

// SanitizeColumn trims and validates a column name.
// Returns the trimmed name if valid, or an error if invalid.
func SanitizeColumn(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if err := ValidateColumn(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
