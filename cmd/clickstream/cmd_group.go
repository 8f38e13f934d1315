// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/clickstream/pkg/ux"
	"github.com/AleutianAI/clickstream/pkg/validation"
	"github.com/AleutianAI/clickstream/services/journey"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Fold each user's sessions into one aggregated record",
	Long: `Reads a clickstream CSV, sorts by user and session id, selects the
configured session window per user, and writes one aggregated record per
user. The journey column is not deduplicated; run the dedup command or
the full pipeline for that.`,
	Run: runGroup,
}

func init() {
	groupCmd.Flags().String("input", "", "input CSV path (required)")
	groupCmd.Flags().String("output", "", "output CSV path (required)")
	groupCmd.Flags().String("sessions", journey.SessionsAll, `session window: "All" or a non-negative count`)
	groupCmd.Flags().String("count-from", journey.CountFromLast, `window anchor: "first" or "last"`)
	groupCmd.Flags().String("group-column", journey.ColUserID, "column to group by")
	groupCmd.Flags().String("target-column", journey.ColUserJourney, "journey column")
	groupCmd.Flags().String("session-column", journey.ColSessionID, "session id column")
	groupCmd.Flags().String("subscription-column", journey.ColSubscriptionType, "subscription column")
	_ = groupCmd.MarkFlagRequired("input")
	_ = groupCmd.MarkFlagRequired("output")
}

func runGroup(cmd *cobra.Command, _ []string) {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	sessions, _ := cmd.Flags().GetString("sessions")
	countFrom, _ := cmd.Flags().GetString("count-from")

	opts := journey.GroupOptions{
		Sessions:  sessions,
		CountFrom: countFrom,
	}
	var err error
	if opts.GroupColumn, err = flagColumn(cmd, "group-column"); err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}
	if opts.TargetColumn, err = flagColumn(cmd, "target-column"); err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}
	if opts.SessionColumn, err = flagColumn(cmd, "session-column"); err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}
	if opts.SubscriptionColumn, err = flagColumn(cmd, "subscription-column"); err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	src := &journey.CSVSource{Path: input}
	table, err := src.Read(ctx)
	if err != nil {
		logger.Error("read failed", "path", input, "error", err)
		ux.Error(fmt.Sprintf("read failed: %v", err))
		os.Exit(1)
	}

	grouped, err := journey.GroupSessions(table, opts)
	if err != nil {
		if errors.Is(err, journey.ErrInvalidSessions) || errors.Is(err, journey.ErrInvalidCountFrom) {
			ux.Error(err.Error())
			os.Exit(2)
		}
		ux.Error(err.Error())
		os.Exit(1)
	}

	sink := &journey.CSVSink{Path: output}
	if err := sink.Write(ctx, grouped); err != nil {
		logger.Error("write failed", "path", output, "error", err)
		ux.Error(fmt.Sprintf("write failed: %v", err))
		os.Exit(1)
	}

	ux.Summary(table.NumRows(), grouped.NumRows(), output)
}

// flagColumn reads and sanitizes a column-name flag.
func flagColumn(cmd *cobra.Command, name string) (string, error) {
	raw, _ := cmd.Flags().GetString(name)
	return validation.SanitizeColumn(raw)
}
