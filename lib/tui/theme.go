// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for Roster's terminal UI. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// The fields cover universal chrome (text, selection, borders) and the
// semantic categories of this domain: transient status-bar message
// kinds and weekly-hours capacity bands.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Status bar message kinds.
	SuccessText lipgloss.Color
	ErrorText   lipgloss.Color

	// Capacity band colors (indexed 0-3: none, low, medium, high
	// weekly hours).
	CapacityColors [4]lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Accent for the focused pane's scrollbar thumb and input cursor.
	FocusAccent lipgloss.Color

	// Fuzzy filter match highlighting.
	SearchHighlightBackground lipgloss.Color

	// Autolinked references in rendered markdown.
	LinkForeground lipgloss.Color

	// Floating overlays (the capability dropdown).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// CapacityColor returns the color for a weekly-hours capacity value.
// Bands: 0 hours (unstaffed), under 10 (low), under 30 (medium), 30
// and up (high).
func (theme Theme) CapacityColor(hours int) lipgloss.Color {
	switch {
	case hours <= 0:
		return theme.CapacityColors[0]
	case hours < 10:
		return theme.CapacityColors[1]
	case hours < 30:
		return theme.CapacityColors[2]
	default:
		return theme.CapacityColors[3]
	}
}

// MessageColor returns the status bar color for a message kind string
// ("success" or "error"). Unknown kinds render as normal text.
func (theme Theme) MessageColor(kind string) lipgloss.Color {
	switch kind {
	case "success":
		return theme.SuccessText
	case "error":
		return theme.ErrorText
	default:
		return theme.NormalText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	SuccessText: lipgloss.Color("114"), // green
	ErrorText:   lipgloss.Color("196"), // bright red

	CapacityColors: [4]lipgloss.Color{
		lipgloss.Color("240"), // unstaffed: dim gray
		lipgloss.Color("245"), // low: gray
		lipgloss.Color("75"),  // medium: blue
		lipgloss.Color("114"), // high: green
	},

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	FocusAccent: lipgloss.Color("220"), // amber

	SearchHighlightBackground: lipgloss.Color("58"), // dark amber

	LinkForeground: lipgloss.Color("75"), // blue

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
