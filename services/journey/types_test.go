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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AppendRow_ArityChecked(t *testing.T) {
	table := NewTable("a", "b")

	require.NoError(t, table.AppendRow(String("1"), String("2")))
	assert.Error(t, table.AppendRow(String("1")))
	assert.Error(t, table.AppendRow(String("1"), String("2"), String("3")))
	assert.Equal(t, 1, table.NumRows())
}

func TestTable_Get(t *testing.T) {
	table := NewTable("a", "b")
	require.NoError(t, table.AppendRow(String("x"), Null()))

	v, ok := table.Get(0, "a")
	assert.True(t, ok)
	assert.Equal(t, String("x"), v)

	v, ok = table.Get(0, "b")
	assert.True(t, ok)
	assert.Equal(t, Null(), v)

	_, ok = table.Get(0, "missing")
	assert.False(t, ok)
	_, ok = table.Get(1, "a")
	assert.False(t, ok)
	_, ok = table.Get(-1, "a")
	assert.False(t, ok)
}

func TestTable_Column(t *testing.T) {
	table := NewTable("a")
	require.NoError(t, table.AppendRow(String("1")))
	require.NoError(t, table.AppendRow(String("2")))

	got, err := table.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []Value{String("1"), String("2")}, got)

	_, err = table.Column("missing")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestTable_CloneIsDeep(t *testing.T) {
	table := NewTable("a")
	require.NoError(t, table.AppendRow(String("original")))

	clone := table.Clone()
	clone.rows[0][0] = String("changed")

	v, _ := table.Get(0, "a")
	assert.Equal(t, String("original"), v)
}

func TestTable_ColumnsCopy(t *testing.T) {
	table := NewTable("a", "b")
	cols := table.Columns()
	cols[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, table.Columns())
}
