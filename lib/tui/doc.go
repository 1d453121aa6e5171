// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// Roster's interactive client. Built around bubbletea (Elm
// architecture), it covers the generic pieces: theming, dropdown
// overlays, ANSI-aware overlay splicing, scrollbars, and fuzzy text
// matching. The capability-specific model, layout, and rendering live
// in lib/capui.
package tui
