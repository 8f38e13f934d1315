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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `user_id,session_id,subscription_type,user_journey
1,1,premium,Home-Home-Pricing
1,2,premium,Pricing-Checkout
2,1,free,Home
`

func TestCSVSource_Read(t *testing.T) {
	src := &CSVSource{Reader: strings.NewReader(sampleCSV)}

	table, err := src.Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{ColUserID, ColSessionID, ColSubscriptionType, ColUserJourney}, table.Columns())
	require.Equal(t, 3, table.NumRows())

	v, ok := table.Get(0, ColUserJourney)
	require.True(t, ok)
	assert.Equal(t, String("Home-Home-Pricing"), v)
}

func TestCSVSource_ShortRowsPadded(t *testing.T) {
	in := "user_id,session_id,subscription_type,user_journey\n1,1\n"
	src := &CSVSource{Reader: strings.NewReader(in)}

	table, err := src.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, table.NumRows())

	v, _ := table.Get(0, ColUserJourney)
	assert.Equal(t, Null(), v, "missing trailing cells become absent values")
	v, _ = table.Get(0, ColUserID)
	assert.Equal(t, String("1"), v)
}

func TestCSVSource_LongRowRejected(t *testing.T) {
	in := "a,b\n1,2,3\n"
	src := &CSVSource{Reader: strings.NewReader(in)}

	_, err := src.Read(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fields")
}

func TestCSVSource_EmptyInput(t *testing.T) {
	src := &CSVSource{Reader: strings.NewReader("")}

	_, err := src.Read(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestCSVSource_HeaderOnly(t *testing.T) {
	src := &CSVSource{Reader: strings.NewReader("user_id,user_journey\n")}

	table, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, table.NumRows())
}

func TestCSVSource_MissingFile(t *testing.T) {
	src := &CSVSource{Path: filepath.Join(t.TempDir(), "nope.csv")}

	_, err := src.Read(context.Background())
	require.Error(t, err)
}

func TestCSVSink_Write(t *testing.T) {
	table := NewTable(ColUserID, ColUserJourney)
	require.NoError(t, table.AppendRow(String("1"), String("A-B")))
	require.NoError(t, table.AppendRow(String("2"), Null()))

	var buf bytes.Buffer
	sink := &CSVSink{Writer: &buf}
	require.NoError(t, sink.Write(context.Background(), table))

	want := "user_id,user_journey\n1,A-B\n2,\n"
	assert.Equal(t, want, buf.String())
}

func TestCSV_RoundTripFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.csv")
	outPath := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(inPath, []byte(sampleCSV), 0o644))

	ctx := context.Background()
	table, err := (&CSVSource{Path: inPath}).Read(ctx)
	require.NoError(t, err)
	require.NoError(t, (&CSVSink{Path: outPath}).Write(ctx, table))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))
}

func TestCSVSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&CSVSource{Reader: strings.NewReader(sampleCSV)}).Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
