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
	"github.com/spf13/cobra"

	"github.com/AleutianAI/clickstream/pkg/logging"
	"github.com/AleutianAI/clickstream/pkg/ux"
)

var (
	rootCmd = &cobra.Command{
		Use:   "clickstream",
		Short: "A CLI to clean and aggregate clickstream journey tables",
		Long: `Clickstream takes a CSV of user sessions, removes consecutive
duplicate pages from each journey, and folds every user's sessions into
one aggregated record suitable for sequence analysis.`,
	}

	flagLogLevel string
	flagPlain    bool

	// logger is configured by the persistent pre-run before any
	// subcommand executes.
	logger *logging.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "minimum log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "plain unstyled output, for scripts")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		ux.SetPlain(flagPlain)
		logger = logging.New(logging.Config{
			Level:   logging.ParseLevel(flagLogLevel),
			Service: "clickstream",
		})
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(dedupCmd)
	rootCmd.AddCommand(groupCmd)
}
