// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// scrollbarGlyphs strips styling and returns one glyph per row.
func scrollbarGlyphs(t *testing.T, rendered string, wantHeight int) []string {
	t.Helper()
	lines := strings.Split(rendered, "\n")
	if len(lines) != wantHeight {
		t.Fatalf("rendered %d rows, want %d", len(lines), wantHeight)
	}
	glyphs := make([]string, len(lines))
	for index, line := range lines {
		glyphs[index] = ansi.Strip(line)
	}
	return glyphs
}

func TestRenderScrollbarContentFits(t *testing.T) {
	rendered := RenderScrollbar(DefaultTheme, 4, 3, 5, 0, false)
	for index, glyph := range scrollbarGlyphs(t, rendered, 4) {
		if glyph != "┃" {
			t.Errorf("row %d = %q, want full-height thumb", index, glyph)
		}
	}
}

func TestRenderScrollbarThumbTracksOffset(t *testing.T) {
	// 10 items, 4 visible: thumb is 1 row on a 4-row track.
	top := scrollbarGlyphs(t, RenderScrollbar(DefaultTheme, 4, 10, 4, 0, true), 4)
	if top[0] != "┃" {
		t.Errorf("offset 0: top row = %q, want thumb", top[0])
	}
	for index := 1; index < 4; index++ {
		if top[index] != "│" {
			t.Errorf("offset 0: row %d = %q, want track", index, top[index])
		}
	}

	bottom := scrollbarGlyphs(t, RenderScrollbar(DefaultTheme, 4, 10, 4, 6, true), 4)
	if bottom[3] != "┃" {
		t.Errorf("max offset: bottom row = %q, want thumb", bottom[3])
	}
	if bottom[0] != "│" {
		t.Errorf("max offset: top row = %q, want track", bottom[0])
	}
}

func TestRenderScrollbarZeroHeight(t *testing.T) {
	if got := RenderScrollbar(DefaultTheme, 0, 10, 4, 0, false); got != "" {
		t.Errorf("zero height rendered %q", got)
	}
}
