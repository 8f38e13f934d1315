// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package journey

import (
	"fmt"
	"strings"
)

// CollapseRepeats returns a copy of t in which consecutive duplicate
// tokens in the named column are collapsed to one. All other columns are
// untouched, and absent cells pass through unchanged. The input table is
// never modified.
//
// "Home-Home-Search-Search-Search-Cart" becomes "Home-Search-Cart".
// Single-token and empty strings come back as-is. The result is
// idempotent: applying CollapseRepeats to its own output is a no-op.
func CollapseRepeats(t *Table, column string) (*Table, error) {
	ci, err := t.columnIndex(column)
	if err != nil {
		return nil, fmt.Errorf("collapse repeats: %w", err)
	}

	out := t.Clone()
	for _, row := range out.rows {
		cell := row[ci]
		if !cell.Valid {
			continue
		}
		row[ci] = String(collapseTokens(cell.Str))
	}
	return out, nil
}

// collapseTokens removes consecutive duplicates from one delimited
// sequence. The first token is always kept.
func collapseTokens(s string) string {
	tokens := strings.Split(s, Delimiter)
	if len(tokens) < 2 {
		return s
	}
	kept := []string{tokens[0]}
	for _, tok := range tokens[1:] {
		if tok != kept[len(kept)-1] {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, Delimiter)
}
