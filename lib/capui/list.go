// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/tui"
)

// Column widths for the list table. The practice area column fills
// remaining space; all others are fixed.
const (
	columnWidthCapacity = 5 // right-aligned "%4dh", e.g. "  20h"
	columnWidthCount    = 3 // right-aligned consultant count "%3d"
)

// ListRenderer handles the table-style rendering of capability rows
// within a given width.
type ListRenderer struct {
	theme tui.Theme
	width int
}

// NewListRenderer creates a ListRenderer for the given row width.
func NewListRenderer(theme tui.Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width}
}

// nameWidth returns the fixed width of the capability name column:
// roughly 40% of the row, clamped so narrow panes still show a usable
// prefix and wide panes don't drown the practice area column.
func (renderer ListRenderer) nameWidth() int {
	width := renderer.width * 2 / 5
	if width < 12 {
		width = 12
	}
	if width > 30 {
		width = 30
	}
	return width
}

// RenderRow renders a single capability as a formatted table row. The
// selected flag controls highlight styling. matchPositions contains
// rune indices in the name that matched the current fuzzy filter
// query; when non-nil, those characters are highlighted.
//
// Row layout: indent + name + practice area + capacity + count:
//
//	 Data Migration       Cloud Infrastructure       20h   3
func (renderer ListRenderer) RenderRow(name string, entry capability.Capability, selected bool, matchPositions []int) string {
	nameWidth := renderer.nameWidth()
	// 1 indent + 3 inter-column gaps + the two fixed right columns.
	practiceWidth := renderer.width - nameWidth - columnWidthCapacity - columnWidthCount - 4
	if practiceWidth < 6 {
		practiceWidth = 6
	}

	displayName := name
	if lipgloss.Width(displayName) > nameWidth {
		displayName = truncateString(displayName, nameWidth-1) + "…"
	}
	practice := entry.PracticeArea
	if lipgloss.Width(practice) > practiceWidth {
		practice = truncateString(practice, practiceWidth-1) + "…"
	}

	capacityText := fmt.Sprintf("%4dh", entry.Capacity)
	countText := fmt.Sprintf("%3d", len(entry.Consultants))

	if selected {
		return renderer.renderSelectedRow(displayName, practice, capacityText, countText, nameWidth, practiceWidth, matchPositions)
	}
	return renderer.renderNormalRow(displayName, practice, capacityText, countText, nameWidth, practiceWidth, entry.Capacity, matchPositions)
}

// renderNormalRow renders a row with per-column foreground colors on
// the default terminal background.
func (renderer ListRenderer) renderNormalRow(name, practice, capacityText, countText string, nameWidth, practiceWidth, capacity int, matchPositions []int) string {
	nameStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.NormalText)

	var nameRendered string
	if len(matchPositions) > 0 {
		highlightStyle := nameStyle.
			Background(renderer.theme.SearchHighlightBackground)
		nameRendered = highlightRunes(name, matchPositions, nameStyle, highlightStyle)
	} else {
		nameRendered = nameStyle.Render(name)
	}
	nameRendered = lipgloss.NewStyle().Width(nameWidth).Render(nameRendered)

	practiceRendered := lipgloss.NewStyle().
		Foreground(renderer.theme.FaintText).
		Width(practiceWidth).
		Render(practice)

	capacityRendered := lipgloss.NewStyle().
		Foreground(renderer.theme.CapacityColor(capacity)).
		Render(capacityText)

	countRendered := lipgloss.NewStyle().
		Foreground(renderer.theme.FaintText).
		Render(countText)

	row := " " + nameRendered + " " + practiceRendered + " " + capacityRendered + " " + countRendered

	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// renderSelectedRow renders the selected row with a highlight
// background. All text uses the selected foreground color; filter
// matches use bold+underline since a background tint would be
// invisible against the selection highlight.
func (renderer ListRenderer) renderSelectedRow(name, practice, capacityText, countText string, nameWidth, practiceWidth int, matchPositions []int) string {
	baseStyle := lipgloss.NewStyle().
		Background(renderer.theme.SelectedBackground).
		Foreground(renderer.theme.SelectedForeground)

	var nameRendered string
	if len(matchPositions) > 0 {
		highlightStyle := baseStyle.Bold(true).Underline(true)
		nameRendered = highlightRunes(name, matchPositions, baseStyle.Bold(true), highlightStyle)
	} else {
		nameRendered = baseStyle.Bold(true).Render(name)
	}
	nameRendered = baseStyle.Width(nameWidth).Render(nameRendered)

	row := " " + nameRendered +
		" " + baseStyle.Width(practiceWidth).Render(practice) +
		" " + baseStyle.Render(capacityText) +
		" " + baseStyle.Render(countText)

	return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// highlightRunes renders text with character-level highlighting at the
// given rune positions. Characters at matched positions use
// highlightStyle; all others use baseStyle. Consecutive runs of
// same-style characters are batched into a single Render call to keep
// ANSI output compact. Positions beyond the text (possible when the
// displayed name was truncated) are ignored.
func highlightRunes(text string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(text)
	}

	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	runes := []rune(text)
	var result strings.Builder
	runStart := 0
	isHighlighted := len(runes) > 0 && positionSet[0]

	for index := 1; index <= len(runes); index++ {
		currentHighlighted := index < len(runes) && positionSet[index]
		if currentHighlighted != isHighlighted || index == len(runes) {
			chunk := string(runes[runStart:index])
			if isHighlighted {
				result.WriteString(highlightStyle.Render(chunk))
			} else {
				result.WriteString(baseStyle.Render(chunk))
			}
			runStart = index
			isHighlighted = currentHighlighted
		}
	}

	return result.String()
}

// truncateString truncates a string to maxWidth visual characters.
// Handles multi-byte characters correctly via lipgloss width
// measurement.
func truncateString(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length])
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
