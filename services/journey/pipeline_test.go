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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/clickstream/pkg/logging"
)

// failingSource implements Source and always fails.
type failingSource struct{ err error }

func (s *failingSource) Read(ctx context.Context) (*Table, error) { return nil, s.err }

// memorySink captures the written table.
type memorySink struct{ table *Table }

func (s *memorySink) Write(ctx context.Context, t *Table) error {
	s.table = t
	return nil
}

func quietLogger() *logging.Logger {
	return logging.New(logging.Config{Quiet: true})
}

func TestPipeline_Run(t *testing.T) {
	in := `user_id,session_id,subscription_type,user_journey
1,1,premium,A-A-B
1,2,premium,B-C
2,1,free,X-X-X
`
	var out bytes.Buffer
	p := &Pipeline{Logger: quietLogger()}

	stats, err := p.Run(
		context.Background(),
		&CSVSource{Reader: strings.NewReader(in)},
		&CSVSink{Writer: &out},
	)
	require.NoError(t, err)

	assert.Equal(t, Stats{RowsIn: 3, RowsOut: 2}, stats)

	want := `user_id,session_id,subscription_type,user_journey
1,1-2,premium,A-B-C
2,1,free,X
`
	assert.Equal(t, want, out.String())
}

func TestPipeline_Run_BoundedWindow(t *testing.T) {
	in := `user_id,session_id,subscription_type,user_journey
1,1,free,A-B
1,2,free,C-D
1,3,trial,E-F
`
	var out bytes.Buffer
	p := &Pipeline{
		Options: GroupOptions{Sessions: "2", CountFrom: "first"},
		Logger:  quietLogger(),
	}

	_, err := p.Run(
		context.Background(),
		&CSVSource{Reader: strings.NewReader(in)},
		&CSVSink{Writer: &out},
	)
	require.NoError(t, err)

	want := `user_id,session_id,subscription_type,user_journey
1,1-2,free,A-B-C-D
`
	assert.Equal(t, want, out.String())
}

func TestPipeline_Run_InvalidWindow(t *testing.T) {
	p := &Pipeline{
		Options: GroupOptions{Sessions: "bogus"},
		Logger:  quietLogger(),
	}

	_, err := p.Run(
		context.Background(),
		&CSVSource{Reader: strings.NewReader(sampleCSV)},
		&memorySink{},
	)
	assert.ErrorIs(t, err, ErrInvalidSessions)
}

func TestPipeline_Run_SourceError(t *testing.T) {
	boom := errors.New("boom")
	p := &Pipeline{Logger: quietLogger()}

	_, err := p.Run(context.Background(), &failingSource{err: boom}, &memorySink{})
	assert.ErrorIs(t, err, boom)
}

func TestPipeline_Run_NilLoggerUsesDefault(t *testing.T) {
	p := &Pipeline{}
	sink := &memorySink{}

	_, err := p.Run(
		context.Background(),
		&CSVSource{Reader: strings.NewReader("user_id,session_id,subscription_type,user_journey\n")},
		sink,
	)
	require.NoError(t, err)
	require.NotNil(t, sink.table)
	assert.Equal(t, 0, sink.table.NumRows())
}

func TestPipeline_Run_BoundaryDuplicatesCollapsed(t *testing.T) {
	// Same page ends session 1 and starts session 2; only the second
	// collapse pass can remove the duplicate.
	in := `user_id,session_id,subscription_type,user_journey
7,1,free,Home-Cart
7,2,free,Cart-Checkout
`
	sink := &memorySink{}
	p := &Pipeline{Logger: quietLogger()}

	_, err := p.Run(context.Background(), &CSVSource{Reader: strings.NewReader(in)}, sink)
	require.NoError(t, err)

	v, ok := sink.table.Get(0, ColUserJourney)
	require.True(t, ok)
	assert.Equal(t, "Home-Cart-Checkout", v.Str)
}
