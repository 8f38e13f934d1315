// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package validation

import (
	"testing"
)

func TestValidateColumn(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		wantErr bool
	}{
		// Valid names
		{"simple", "user_id", false},
		{"single char", "x", false},
		{"leading underscore", "_private", false},
		{"with digits", "col2", false},
		{"camel case", "userJourney", false},

		// Invalid names
		{"empty", "", true},
		{"hyphen is the delimiter", "user-journey", true},
		{"leading digit", "2col", true},
		{"spaces", "user id", true},
		{"dot", "a.b", true},
		{"injection attempt", `user_id","x`, true},
		{"unicode", "usérid", true},
		{"too long", "a234567890123456789012345678901234567890123456789012345678901234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumn(tt.column)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumn(%q) error = %v, wantErr %v", tt.column, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		wantErr bool
	}{
		{"all valid", []string{"user_id", "session_id", "user_journey"}, false},
		{"one invalid", []string{"user_id", "bad name", "user_journey"}, true},
		{"all invalid", []string{"-", ""}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumns(tt.columns)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumns(%v) error = %v, wantErr %v", tt.columns, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeColumn(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		want    string
		wantErr bool
	}{
		{"passthrough", "user_id", "user_id", false},
		{"trimmed", "  user_id  ", "user_id", false},
		{"invalid rejected", "user journey", "", true},
		{"only spaces", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeColumn(tt.column)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SanitizeColumn(%q) error = %v, wantErr %v", tt.column, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SanitizeColumn(%q) = %q, want %q", tt.column, got, tt.want)
			}
		})
	}
}
