// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// LogHandler is a slog.Handler that forwards log records into the
// bubbletea program as messages, so background failures (auto-refresh,
// store resyncs) surface in the status bar instead of corrupting the
// terminal with stderr writes while the TUI owns the screen.
//
// The program pointer is set after tea.NewProgram via SetProgram;
// records arriving before that are dropped. Handlers derived through
// WithAttrs/WithGroup share the same pointer, so one SetProgram call
// covers the whole logger tree.
type LogHandler struct {
	program  *atomic.Pointer[tea.Program]
	minLevel slog.Level
	attrs    []slog.Attr
	groups   []string
}

// NewLogHandler creates a handler that forwards records at or above
// minLevel.
func NewLogHandler(minLevel slog.Level) *LogHandler {
	return &LogHandler{
		program:  new(atomic.Pointer[tea.Program]),
		minLevel: minLevel,
	}
}

// SetProgram connects the handler to a running bubbletea program.
func (handler *LogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled implements slog.Handler.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.minLevel
}

// Handle implements slog.Handler. The record is flattened into a
// one-line summary ("message (key=value, key=value)") and delivered
// as a logRecordMsg.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	var pairs []string
	prefix := strings.Join(handler.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	for _, attr := range handler.attrs {
		pairs = append(pairs, fmt.Sprintf("%s%s=%v", prefix, attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		pairs = append(pairs, fmt.Sprintf("%s%s=%v", prefix, attr.Key, attr.Value))
		return true
	})

	summary := record.Message
	if len(pairs) > 0 {
		summary += " (" + strings.Join(pairs, ", ") + ")"
	}

	program.Send(logRecordMsg{summary: summary, level: record.Level})
	return nil
}

// WithAttrs implements slog.Handler. The derived handler shares the
// program pointer with its parent.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := *handler
	derived.attrs = append(append([]slog.Attr(nil), handler.attrs...), attrs...)
	return &derived
}

// WithGroup implements slog.Handler.
func (handler *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	derived := *handler
	derived.groups = append(append([]string(nil), handler.groups...), name)
	return &derived
}
