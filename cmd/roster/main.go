// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Roster is an interactive terminal UI for a consulting practice's
// capability roster. It lists the capabilities the practice offers,
// shows each capability's description and registered consultants, and
// registers or unregisters consultant emails against a capability —
// all backed by the capability service's REST API.
//
// Configuration comes from a YAML file (--config or ROSTER_CONFIG),
// with flags overriding file values. With --refresh the snapshot also
// updates on a fixed schedule; otherwise it loads once at startup and
// on the manual refresh binding.
//
// Background logging routes through a TUI handler that displays
// warnings and errors in the status bar instead of writing to stderr
// (which would corrupt the alt-screen display). An optional file
// logger (--log-file) captures records as JSON lines for post-mortem
// debugging.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/roster-works/roster/lib/capservice"
	"github.com/roster-works/roster/lib/capstore"
	"github.com/roster-works/roster/lib/capui"
	"github.com/roster-works/roster/lib/clock"
	"github.com/roster-works/roster/lib/config"
	"github.com/roster-works/roster/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var serviceURL string
	var configPath string
	var refresh time.Duration
	var logFile string
	var logLevel string

	flagSet := pflag.NewFlagSet("roster", pflag.ContinueOnError)
	flagSet.StringVar(&serviceURL, "service-url", "", "capability service base URL (overrides the config file)")
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file (default: $ROSTER_CONFIG)")
	flagSet.DurationVar(&refresh, "refresh", 0, "auto-refresh interval, 0 disables (overrides the config file)")
	flagSet.StringVar(&logFile, "log-file", "", "write JSON log records to this file (overrides the config file)")
	flagSet.StringVar(&logLevel, "log-level", "", "minimum log file level: debug, info, warn, or error")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("roster")
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

	cfg, err := loadConfig(flagSet, configPath, serviceURL, refresh, logFile, logLevel)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("standard output is not a terminal")
	}

	// Warn+ records surface in the status bar; the optional log file
	// captures everything down to the configured level.
	tuiHandler := capui.NewLogHandler(slog.LevelWarn)
	var logger *slog.Logger
	if cfg.LogFile != "" {
		minLevel, levelErr := config.ParseLevel(cfg.LogLevel)
		if levelErr != nil {
			return levelErr
		}
		fileHandler, fileCloser, fileErr := openFileLogHandler(cfg.LogFile, minLevel)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", cfg.LogFile, fileErr)
		}
		defer fileCloser()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	} else {
		logger = slog.New(tuiHandler)
	}

	client, err := capservice.NewClient(capservice.ClientConfig{
		BaseURL:    cfg.ServiceURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeoutDuration()},
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	store, err := capstore.New(capstore.Config{
		Client: client,
		Logger: logger,
		Clock:  clock.Real(),
	})
	if err != nil {
		return err
	}

	model, err := capui.NewModel(capui.Config{
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if interval := cfg.RefreshIntervalDuration(); interval > 0 {
		go func() {
			if err := store.RunAutoRefresh(ctx, interval); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("auto-refresh stopped", "error", err)
			}
		}()
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	tuiHandler.SetProgram(program)

	if _, err := program.Run(); err != nil {
		// A signal cancels the program's context; that is a normal
		// exit, not a TUI failure.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// loadConfig resolves the effective configuration: the config file
// (explicit path, ROSTER_CONFIG, or defaults), with set flags layered
// over it, then a final validation of the merged result.
func loadConfig(flagSet *pflag.FlagSet, path, serviceURL string, refresh time.Duration, logFile, logLevel string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if flagSet.Changed("service-url") {
		cfg.ServiceURL = serviceURL
	}
	if flagSet.Changed("refresh") {
		cfg.RefreshInterval = refresh.String()
	}
	if flagSet.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Roster — interactive terminal UI for the capability roster.

Lists the practice's capabilities with their descriptions and
registered consultants. Register an email against a capability with
'r', remove a registration with 'x' in the roster pane, filter the
list with '/', and refresh manually with 'R'.

By default, connects to %s. Point --service-url at a
live capability service, or run roster-mock-service for a local
in-memory backend.

Usage:
  roster [flags]

Examples:
  # Connect to the default local service
  roster

  # Connect to a shared service, refreshing every 30 seconds
  roster --service-url https://caps.internal:8443 --refresh 30s

  # Keep a debug log for a session worth investigating
  roster --log-file ./roster.log --log-level debug

Flags:
`, config.DefaultServiceURL)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string, level slog.Level) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
