// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Package capui implements the interactive capability roster viewer
// as a bubbletea model.
//
// The layout is a two-pane terminal UI: a capability list on the left
// (fuzzy-filterable, one row per capability in snapshot order) and a
// detail pane on the right (fixed header, scrollable markdown
// description, consultant roster). A registration form overlay opens
// on demand; a one-line status bar at the bottom shows transient
// success/error messages that fade after five seconds.
//
// The model owns no capability state of its own: it renders snapshots
// read from a capstore.Store and issues mutations back through it.
// Store calls run as tea.Cmd goroutines so the UI never blocks on the
// network; results and store events come back as bubbletea messages.
package capui
