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

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/clickstream/pkg/ux"
	"github.com/AleutianAI/clickstream/services/journey"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full cleaning pipeline on a clickstream CSV",
	Long: `Reads session records, removes consecutive duplicate pages from each
journey, folds every user's sessions into one aggregated record, removes
the duplicates introduced at the session boundaries, and writes the
per-user table.`,
	Run: runPipeline,
}

func init() {
	runCmd.Flags().String("config", "", "YAML pipeline configuration file")
	runCmd.Flags().String("input", "", "input CSV path (overrides config)")
	runCmd.Flags().String("output", "", "output CSV path (overrides config)")
	runCmd.Flags().String("sessions", "", `session window: "All" or a non-negative count (overrides config)`)
	runCmd.Flags().String("count-from", "", `window anchor: "first" or "last" (overrides config)`)
}

// resolveRunConfig merges the optional config file with flag overrides.
func resolveRunConfig(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.Input = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Output = v
	}
	if v, _ := cmd.Flags().GetString("sessions"); v != "" {
		cfg.Sessions = v
	}
	if v, _ := cmd.Flags().GetString("count-from"); v != "" {
		cfg.CountFrom = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPipeline(cmd *cobra.Command, _ []string) {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	runID := uuid.New().String()
	log := logger.With("run_id", runID)

	pipeline := &journey.Pipeline{
		Options: cfg.GroupOptions(),
		Logger:  log,
	}

	stats, err := pipeline.Run(
		context.Background(),
		&journey.CSVSource{Path: cfg.Input},
		&journey.CSVSink{Path: cfg.Output},
	)
	if err != nil {
		log.Error("pipeline failed", "error", err)
		ux.Error(fmt.Sprintf("pipeline failed: %v", err))
		os.Exit(1)
	}

	ux.Summary(stats.RowsIn, stats.RowsOut, cfg.Output)
}
