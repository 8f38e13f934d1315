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
	"sort"
	"strconv"
	"strings"
)

// SessionsAll selects every session of a user.
const SessionsAll = "All"

// Recognized values for GroupOptions.CountFrom.
const (
	CountFromFirst = "first"
	CountFromLast  = "last"
)

// GroupOptions configures GroupSessions. The zero value selects the
// standard clickstream columns, all sessions, counting from the last.
type GroupOptions struct {
	// GroupColumn is the key records are grouped by. Default "user_id".
	GroupColumn string

	// TargetColumn holds the journey strings. Default "user_journey".
	TargetColumn string

	// SessionColumn orders a user's records. Default "session_id".
	SessionColumn string

	// SubscriptionColumn holds the subscription label. Default
	// "subscription_type".
	SubscriptionColumn string

	// Sessions is SessionsAll or a non-negative integer count as a
	// string. Default SessionsAll.
	Sessions string

	// CountFrom is "first" or "last" (case-insensitive) and only
	// matters when Sessions is a bounded count. Default "last".
	CountFrom string
}

func (o GroupOptions) withDefaults() GroupOptions {
	if o.GroupColumn == "" {
		o.GroupColumn = ColUserID
	}
	if o.TargetColumn == "" {
		o.TargetColumn = ColUserJourney
	}
	if o.SessionColumn == "" {
		o.SessionColumn = ColSessionID
	}
	if o.SubscriptionColumn == "" {
		o.SubscriptionColumn = ColSubscriptionType
	}
	if o.Sessions == "" {
		o.Sessions = SessionsAll
	}
	if o.CountFrom == "" {
		o.CountFrom = CountFromLast
	}
	return o
}

// window is a parsed session selection.
type window struct {
	all       bool
	n         int
	fromFirst bool
}

// parseWindow validates the sessions/count_from pair. count_from is only
// inspected for bounded windows, so "All" plus a bad count_from is not
// an error.
func parseWindow(sessions, countFrom string) (window, error) {
	if sessions == SessionsAll {
		return window{all: true}, nil
	}
	n, err := strconv.Atoi(sessions)
	if err != nil || n < 0 {
		return window{}, fmt.Errorf("%w: %q is not %q or a non-negative integer", ErrInvalidSessions, sessions, SessionsAll)
	}
	switch strings.ToLower(countFrom) {
	case CountFromFirst:
		return window{n: n, fromFirst: true}, nil
	case CountFromLast:
		return window{n: n}, nil
	default:
		return window{}, fmt.Errorf("%w: %q is not %q or %q", ErrInvalidCountFrom, countFrom, CountFromFirst, CountFromLast)
	}
}

// apply selects the windowed slice of a group's row indices. A count
// larger than the group is a no-op, matching head/tail semantics.
func (w window) apply(rows []int) []int {
	if w.all || w.n >= len(rows) {
		return rows
	}
	if w.fromFirst {
		return rows[:w.n]
	}
	return rows[len(rows)-w.n:]
}

// lessValue orders cells for grouping: absent cells first, then cells
// that parse as integers ordered numerically, then everything else
// ordered lexicographically. Numeric comparison keeps session id "10"
// after "2", the order a typed column would have. Ranking the integer
// cells as a class keeps the order total when a column mixes numeric
// and non-numeric values; a per-pair choice of comparison would not be
// transitive. String comparison breaks numeric ties like "01" vs "1"
// so equal sort keys are exactly equal cells.
func lessValue(a, b Value) bool {
	if a.Valid != b.Valid {
		return !a.Valid
	}
	ai, errA := strconv.Atoi(a.Str)
	bi, errB := strconv.Atoi(b.Str)
	numA, numB := errA == nil, errB == nil
	if numA != numB {
		return numA
	}
	if numA && ai != bi {
		return ai < bi
	}
	return a.Str < b.Str
}

// GroupSessions folds session records into one aggregated record per
// distinct group key. Records are stable-sorted by (group key, session
// id) ascending, a window of each user's sessions is selected per
// opts.Sessions/opts.CountFrom, and the window is folded:
//
//   - journey strings joined with the delimiter, in window order
//   - session ids joined with the delimiter, in window order
//   - unique subscription labels joined with the delimiter, in
//     first-occurrence order
//
// Output rows appear in the order their group key first appears in the
// sorted input. The input table is never modified. The only error
// conditions are an invalid window (ErrInvalidSessions,
// ErrInvalidCountFrom) and a missing column (ErrUnknownColumn); an empty
// table yields an empty result.
func GroupSessions(t *Table, opts GroupOptions) (*Table, error) {
	opts = opts.withDefaults()

	win, err := parseWindow(opts.Sessions, opts.CountFrom)
	if err != nil {
		return nil, fmt.Errorf("group sessions: %w", err)
	}

	gi, err := t.columnIndex(opts.GroupColumn)
	if err != nil {
		return nil, fmt.Errorf("group sessions: %w", err)
	}
	si, err := t.columnIndex(opts.SessionColumn)
	if err != nil {
		return nil, fmt.Errorf("group sessions: %w", err)
	}
	bi, err := t.columnIndex(opts.SubscriptionColumn)
	if err != nil {
		return nil, fmt.Errorf("group sessions: %w", err)
	}
	ji, err := t.columnIndex(opts.TargetColumn)
	if err != nil {
		return nil, fmt.Errorf("group sessions: %w", err)
	}

	// Sort row indices instead of rows so the input stays untouched.
	// Absent cells sort before everything else so they stay contiguous
	// and never interleave with genuine empty strings.
	order := make([]int, len(t.rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := t.rows[order[a]], t.rows[order[b]]
		if ra[gi] != rb[gi] {
			return lessValue(ra[gi], rb[gi])
		}
		return lessValue(ra[si], rb[si])
	})

	out := NewTable(opts.GroupColumn, opts.SessionColumn, opts.SubscriptionColumn, opts.TargetColumn)

	// After sorting, each group's rows are contiguous in order.
	for start := 0; start < len(order); {
		key := t.rows[order[start]][gi]
		end := start
		for end < len(order) && t.rows[order[end]][gi] == key {
			end++
		}

		selected := win.apply(order[start:end])

		journeys := make([]string, 0, len(selected))
		sessions := make([]string, 0, len(selected))
		var subscriptions []string
		seen := make(map[string]struct{})
		for _, ri := range selected {
			row := t.rows[ri]
			journeys = append(journeys, row[ji].Str)
			sessions = append(sessions, row[si].Str)
			sub := row[bi].Str
			if _, dup := seen[sub]; !dup {
				seen[sub] = struct{}{}
				subscriptions = append(subscriptions, sub)
			}
		}

		if err := out.AppendRow(
			key,
			String(strings.Join(sessions, Delimiter)),
			String(strings.Join(subscriptions, Delimiter)),
			String(strings.Join(journeys, Delimiter)),
		); err != nil {
			return nil, fmt.Errorf("group sessions: %w", err)
		}
		start = end
	}

	return out, nil
}
