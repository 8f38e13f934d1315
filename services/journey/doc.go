// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package journey cleans and aggregates clickstream session tables.
//
// # Description
//
// The package operates on an in-memory Table of session records. Each
// record carries a user id, a session id, a subscription label, and a
// journey: the hyphen-delimited sequence of page tokens the user visited
// during that session. Two pure transforms do all the work:
//
//   - CollapseRepeats removes consecutive duplicate tokens from a
//     journey column, row by row.
//   - GroupSessions folds a user's sessions (all of them, or the first
//     or last N by session id) into one aggregated record per user.
//
// Both return a new Table and never mutate their input, so they compose
// freely. Pipeline wires them into the standard cleaning sequence:
// collapse, group, collapse again to catch duplicates introduced at the
// session join boundaries.
//
// # Delimiter
//
// The hyphen is used at every level: between page tokens, between joined
// session ids, and between joined subscription labels. The package
// assumes token, session id, and subscription content is hyphen-free; a
// value that legitimately contains a hyphen cannot be split back out of
// an aggregate. Callers that cannot guarantee this must sanitize their
// input first.
//
// # Thread Safety
//
// Tables are not safe for concurrent mutation. The transforms themselves
// are stateless and safe to call from multiple goroutines on distinct
// tables.
package journey
