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
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/clickstream/pkg/validation"
	"github.com/AleutianAI/clickstream/services/journey"
)

// Config is the YAML pipeline configuration. CLI flags override the
// file values; everything except input and output has a default.
type Config struct {
	// Input is the clickstream CSV to read.
	Input string `yaml:"input" validate:"required"`

	// Output is the aggregated CSV to write.
	Output string `yaml:"output" validate:"required"`

	// Columns maps the logical fields onto the table's column names.
	Columns ColumnsConfig `yaml:"columns"`

	// Sessions is "All" or a non-negative session count.
	Sessions string `yaml:"sessions" validate:"omitempty,session_window"`

	// CountFrom anchors a bounded window: "first" or "last".
	CountFrom string `yaml:"count_from" validate:"omitempty,oneofci=first last"`
}

// ColumnsConfig names the four clickstream columns. Empty fields fall
// back to the standard names.
type ColumnsConfig struct {
	Group        string `yaml:"group"`
	Target       string `yaml:"target"`
	Session      string `yaml:"session"`
	Subscription string `yaml:"subscription"`
}

// newValidator builds the validator with the session_window rule, which
// accepts "All" or a non-negative integer string.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("session_window", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == journey.SessionsAll {
			return true
		}
		n, err := strconv.Atoi(s)
		return err == nil && n >= 0
	})
	return v
}

// LoadConfig reads and parses a YAML pipeline configuration file.
// Validation happens later, after flag overrides are applied.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

// Validate checks the assembled configuration: required paths, window
// parameters, and well-formed column names.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	columns := []string{c.Columns.Group, c.Columns.Target, c.Columns.Session, c.Columns.Subscription}
	var set []string
	for _, col := range columns {
		if col != "" {
			set = append(set, col)
		}
	}
	if err := validation.ValidateColumns(set); err != nil {
		return err
	}
	return nil
}

// GroupOptions converts the configuration into grouping options.
// Empty fields keep the journey package defaults.
func (c *Config) GroupOptions() journey.GroupOptions {
	return journey.GroupOptions{
		GroupColumn:        c.Columns.Group,
		TargetColumn:       c.Columns.Target,
		SessionColumn:      c.Columns.Session,
		SubscriptionColumn: c.Columns.Subscription,
		Sessions:           c.Sessions,
		CountFrom:          c.CountFrom,
	}
}
