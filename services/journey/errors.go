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

import "errors"

// Sentinel errors for the journey package.
var (
	// ErrUnknownColumn indicates a referenced column is not in the table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidSessions indicates the sessions parameter is neither
	// SessionsAll nor a non-negative integer.
	ErrInvalidSessions = errors.New("invalid sessions parameter")

	// ErrInvalidCountFrom indicates the count_from parameter is neither
	// "first" nor "last".
	ErrInvalidCountFrom = errors.New("invalid count_from parameter")
)
