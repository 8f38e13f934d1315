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
	"fmt"

	"github.com/AleutianAI/clickstream/pkg/logging"
)

// Source materializes a clickstream table. Any reader that can produce
// rows of the expected shape works; CSVSource is the flat-file one.
type Source interface {
	Read(ctx context.Context) (*Table, error)
}

// Sink accepts a finished table. CSVSink is the flat-file one.
type Sink interface {
	Write(ctx context.Context, t *Table) error
}

// Stats summarizes one pipeline run.
type Stats struct {
	// RowsIn is the number of session records read from the source.
	RowsIn int

	// RowsOut is the number of aggregated records written to the sink.
	// One per distinct user.
	RowsOut int
}

// Pipeline runs the full cleaning sequence: collapse repeated tokens,
// fold each user's sessions into one record, collapse again to remove
// duplicates introduced at the session join boundaries, write.
type Pipeline struct {
	// Options configures the grouping stage. Zero value means standard
	// columns, all sessions.
	Options GroupOptions

	// Logger receives per-stage progress. Nil means the default logger.
	Logger *logging.Logger
}

// Run reads from src, transforms, and writes to sink. The returned
// Stats are valid only when err is nil.
func (p *Pipeline) Run(ctx context.Context, src Source, sink Sink) (Stats, error) {
	log := p.Logger
	if log == nil {
		log = logging.Default()
	}
	opts := p.Options.withDefaults()

	raw, err := src.Read(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("read source: %w", err)
	}
	log.Info("table loaded", "rows", raw.NumRows())

	cleaned, err := CollapseRepeats(raw, opts.TargetColumn)
	if err != nil {
		return Stats{}, err
	}

	grouped, err := GroupSessions(cleaned, opts)
	if err != nil {
		return Stats{}, err
	}
	log.Info("sessions grouped", "users", grouped.NumRows(), "sessions", opts.Sessions, "count_from", opts.CountFrom)

	// Joining two sessions can put the same token on both sides of the
	// boundary, so collapse once more.
	final, err := CollapseRepeats(grouped, opts.TargetColumn)
	if err != nil {
		return Stats{}, err
	}

	if err := sink.Write(ctx, final); err != nil {
		return Stats{}, fmt.Errorf("write sink: %w", err)
	}

	return Stats{RowsIn: raw.NumRows(), RowsOut: final.NumRows()}, nil
}
