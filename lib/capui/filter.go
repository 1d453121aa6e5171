// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/roster-works/roster/lib/tui"
)

// FilterState holds the fuzzy filter over the capability list. The
// filter narrows the visible rows client-side without touching the
// snapshot: every capability name is matched against the query and
// non-matches are hidden. Matching is fzf-style fuzzy, so "dmg" finds
// "Data Migration".
type FilterState struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// HandleRune appends a typed character to the filter query.
func (filter *FilterState) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character from the filter query.
// Returns true if the input changed.
func (filter *FilterState) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter query and deactivates it.
func (filter *FilterState) Clear() {
	filter.Input = ""
	filter.Active = false
}

// Visible reports whether the filter bar occupies a list pane row:
// it does while typing and while a confirmed query is narrowing the
// list.
func (filter FilterState) Visible() bool {
	return filter.Active || filter.Input != ""
}

// View renders the filter bar. When active, shows the query with a
// block cursor. When inactive with text, shows the query as a subtle
// reminder that the list is narrowed.
func (filter FilterState) View(theme tui.Theme, width int) string {
	if !filter.Visible() {
		return ""
	}

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.FocusAccent).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			MaxWidth(width).
			Render(" / " + filter.Input + cursor)
	}

	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		MaxWidth(width).
		Render(" filter: " + filter.Input)
}
