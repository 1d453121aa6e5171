// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

// newRunFlagSet mirrors the flag definitions in run() so precedence
// tests parse real flag input.
func newRunFlagSet() (*pflag.FlagSet, *string, *time.Duration) {
	flagSet := pflag.NewFlagSet("roster", pflag.ContinueOnError)
	serviceURL := flagSet.String("service-url", "", "")
	flagSet.String("config", "", "")
	refresh := flagSet.Duration("refresh", 0, "")
	flagSet.String("log-file", "", "")
	flagSet.String("log-level", "", "")
	return flagSet, serviceURL, refresh
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ROSTER_CONFIG", "")
	flagSet, serviceURL, refresh := newRunFlagSet()
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	cfg, err := loadConfig(flagSet, "", *serviceURL, *refresh, "", "")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ServiceURL != "http://localhost:8000" {
		t.Errorf("ServiceURL = %q, want default", cfg.ServiceURL)
	}
	if cfg.RefreshIntervalDuration() != 0 {
		t.Errorf("RefreshIntervalDuration = %v, want 0 (auto-refresh off)", cfg.RefreshIntervalDuration())
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := "service_url: http://from-file:9000\nrefresh_interval: 1m\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	flagSet, serviceURL, refresh := newRunFlagSet()
	if err := flagSet.Parse([]string{"--service-url", "http://from-flag:8000", "--refresh", "30s"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	cfg, err := loadConfig(flagSet, path, *serviceURL, *refresh, "", "")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ServiceURL != "http://from-flag:8000" {
		t.Errorf("ServiceURL = %q, want the flag value", cfg.ServiceURL)
	}
	if cfg.RefreshIntervalDuration() != 30*time.Second {
		t.Errorf("RefreshIntervalDuration = %v, want 30s from flag", cfg.RefreshIntervalDuration())
	}
	// Keys without a set flag keep the file's values.
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from file", cfg.LogLevel)
	}
}

func TestLoadConfigValidatesMergedResult(t *testing.T) {
	t.Setenv("ROSTER_CONFIG", "")
	flagSet, serviceURL, refresh := newRunFlagSet()
	if err := flagSet.Parse([]string{"--service-url", "ftp://nope"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	if _, err := loadConfig(flagSet, "", *serviceURL, *refresh, "", ""); err == nil {
		t.Fatal("expected validation error for non-http service URL from flag")
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	flagSet, serviceURL, refresh := newRunFlagSet()
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := loadConfig(flagSet, missing, *serviceURL, *refresh, "", ""); err == nil {
		t.Fatal("expected error for missing --config file")
	}
}
