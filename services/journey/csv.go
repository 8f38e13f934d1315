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
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVSource reads a comma-delimited table with a header row. Rows
// shorter than the header are padded with absent cells; rows longer than
// the header are an error.
type CSVSource struct {
	// Path is the file to read. Ignored when Reader is set.
	Path string

	// Reader overrides Path, mainly for tests.
	Reader io.Reader
}

// Read materializes the whole file into a Table.
func (s *CSVSource) Read(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := s.Reader
	if in == nil {
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := NewTable(header...)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", t.NumRows()+2, len(record), len(header))
		}
		cells := make([]Value, len(header))
		for i := range cells {
			if i < len(record) {
				cells[i] = String(record[i])
			} else {
				cells[i] = Null()
			}
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// CSVSink writes a table as a comma-delimited file with a header row.
// No index column is emitted. Absent cells are written as empty fields.
type CSVSink struct {
	// Path is the file to create. Ignored when Writer is set.
	Path string

	// Writer overrides Path, mainly for tests.
	Writer io.Writer
}

// Write serializes the whole table.
func (s *CSVSink) Write(ctx context.Context, t *Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := s.Writer
	if out == nil {
		f, err := os.Create(s.Path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(t.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, cell := range row {
			record[i] = cell.Str
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
