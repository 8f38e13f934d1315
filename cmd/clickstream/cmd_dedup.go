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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/clickstream/pkg/ux"
	"github.com/AleutianAI/clickstream/pkg/validation"
	"github.com/AleutianAI/clickstream/services/journey"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Collapse consecutive duplicate pages in a journey column",
	Long: `Reads a clickstream CSV and rewrites the journey column with
consecutive duplicate pages collapsed to one. All other columns pass
through untouched. The grouping stage is not run.`,
	Run: runDedup,
}

func init() {
	dedupCmd.Flags().String("input", "", "input CSV path (required)")
	dedupCmd.Flags().String("output", "", "output CSV path (required)")
	dedupCmd.Flags().String("column", journey.ColUserJourney, "journey column to clean")
	_ = dedupCmd.MarkFlagRequired("input")
	_ = dedupCmd.MarkFlagRequired("output")
}

func runDedup(cmd *cobra.Command, _ []string) {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	column, _ := cmd.Flags().GetString("column")

	column, err := validation.SanitizeColumn(column)
	if err != nil {
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

	cleaned, err := journey.CollapseRepeats(table, column)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	sink := &journey.CSVSink{Path: output}
	if err := sink.Write(ctx, cleaned); err != nil {
		logger.Error("write failed", "path", output, "error", err)
		ux.Error(fmt.Sprintf("write failed: %v", err))
		os.Exit(1)
	}

	ux.Success(fmt.Sprintf("cleaned %d rows into %s", cleaned.NumRows(), output))
}
