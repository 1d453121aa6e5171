// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Roster-mock-service is a drop-in replacement for the capability
// service in development and integration testing. It implements the
// service's REST contract exactly (same routes, same success and
// error response shapes), holds everything in memory, and enforces
// the server-side rules the roster client trusts: capability
// existence, non-blank emails, and no duplicate registrations.
//
// State seeds from a JSONC fixture (--seed) or a small built-in
// roster, and resets on restart. An optional fixed per-request
// latency (--latency) makes spinners and timeout handling visible
// when pointing the roster TUI at it.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/capmock"
	"github.com/roster-works/roster/lib/httpserver"
	"github.com/roster-works/roster/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var listenAddress string
	var seedPath string
	var latency time.Duration

	flagSet := pflag.NewFlagSet("roster-mock-service", pflag.ContinueOnError)
	flagSet.StringVar(&listenAddress, "listen", "127.0.0.1:8000", "TCP listen address")
	flagSet.StringVar(&seedPath, "seed", "", "path to a JSONC seed fixture (default: built-in roster)")
	flagSet.DurationVar(&latency, "latency", 0, "fixed delay added to every request")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the roster binary.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("roster-mock-service")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	if latency < 0 {
		return fmt.Errorf("--latency must not be negative, got %s", latency)
	}

	snapshot, err := loadSeed(seedPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	service := capmock.New(capmock.Config{
		Seed:    snapshot,
		Latency: latency,
		Logger:  logger,
	})

	server := httpserver.New(httpserver.Config{
		Address: listenAddress,
		Handler: service.Handler(),
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("mock capability service starting",
		"capabilities", snapshot.Len(),
		"latency", latency,
	)
	return server.Serve(ctx)
}

// loadSeed reads the seed fixture, falling back to the built-in
// roster when no --seed path is given.
func loadSeed(path string) (capability.Snapshot, error) {
	if path != "" {
		return capability.ReadSeedFile(path)
	}
	return capmock.DefaultSnapshot()
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Mock capability service — in-memory backend for the roster TUI.

Serves the capability REST contract (GET /capabilities, POST
/capabilities/{capability}/register, DELETE /capabilities/{capability}/
unregister) from memory. State seeds from a JSONC fixture or a
built-in roster and resets on restart.

Usage:
  roster-mock-service [flags]

Examples:
  # Serve the built-in roster on the default port
  roster-mock-service

  # Serve a custom fixture with half a second of artificial latency
  roster-mock-service --seed ./team.jsonc --latency 500ms

  # Pick a free port (the resolved address is logged on startup)
  roster-mock-service --listen 127.0.0.1:0

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
