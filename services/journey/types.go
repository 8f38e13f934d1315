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

import "fmt"

// Delimiter separates page tokens within a journey and joined values
// within an aggregated record.
const Delimiter = "-"

// Default column names for clickstream tables.
const (
	ColUserID           = "user_id"
	ColSessionID        = "session_id"
	ColSubscriptionType = "subscription_type"
	ColUserJourney      = "user_journey"
)

// Value is a single table cell. Valid is false for cells that were
// absent in the source (short CSV rows, explicit nulls). Transforms pass
// invalid cells through untouched.
type Value struct {
	Str   string
	Valid bool
}

// String returns a valid Value holding s.
func String(s string) Value {
	return Value{Str: s, Valid: true}
}

// Null returns an absent Value.
func Null() Value {
	return Value{}
}

// Table is an ordered collection of records with named columns. Row and
// column order are significant and preserved by every transform.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// NewTable creates an empty table with the given column names.
func NewTable(columns ...string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
	}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumRows returns the number of records in the table.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// AppendRow adds one record. The number of cells must match the number
// of columns.
func (t *Table) AppendRow(cells ...Value) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.columns))
	}
	t.rows = append(t.rows, append([]Value(nil), cells...))
	return nil
}

// Get returns the cell at row i, column col. The second return is false
// if the column does not exist or i is out of range.
func (t *Table) Get(i int, col string) (Value, bool) {
	ci, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return Value{}, false
	}
	return t.rows[i][ci], true
}

// Column returns all cells of the named column in row order.
func (t *Table) Column(col string) ([]Value, error) {
	ci, err := t.columnIndex(col)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[ci]
	}
	return out, nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := NewTable(t.columns...)
	out.rows = make([][]Value, len(t.rows))
	for i, row := range t.rows {
		out.rows[i] = append([]Value(nil), row...)
	}
	return out
}

func (t *Table) columnIndex(col string) (int, error) {
	ci, ok := t.index[col]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	return ci, nil
}
