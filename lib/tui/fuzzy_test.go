// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
)

func TestFuzzyMatchBasic(t *testing.T) {
	result := FuzzyMatch("Data Migration", []rune("migration"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "dmg" should match "Data Migration": d from Data, m from
	// Migration, g from Migration.
	result := FuzzyMatch("Data Migration", []rune("dmg"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous fuzzy match")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("Data Migration", []rune("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for no match, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected empty positions for no match, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	result := FuzzyMatch("API Design", []rune("api"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := FuzzyMatch("anything", []rune{}, nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty pattern, got %d", result.Score)
	}
}

func TestFuzzyMatchEmptyText(t *testing.T) {
	result := FuzzyMatch("", []rune("a"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty text, got %d", result.Score)
	}
}

func TestFuzzyMatchPositionsInBounds(t *testing.T) {
	text := "Analytics Platform"
	result := FuzzyMatch(text, []rune("alp"), nil)
	if result.Score <= 0 {
		t.Fatal("expected match")
	}
	runeCount := len([]rune(text))
	for _, position := range result.Positions {
		if position < 0 || position >= runeCount {
			t.Errorf("position %d out of bounds for %q", position, text)
		}
	}
}

func TestFuzzyMatchSlabReuse(t *testing.T) {
	slab := NewSlab()
	texts := []string{"Data Migration", "API Design", "Analytics", "Security Review"}
	matched := 0
	for _, text := range texts {
		if FuzzyMatch(text, []rune("a"), slab).Score > 0 {
			matched++
		}
	}
	if matched != len(texts) {
		t.Errorf("matched %d of %d texts containing 'a'", matched, len(texts))
	}
}

func TestFuzzyMatchRanksTighterMatchHigher(t *testing.T) {
	tight := FuzzyMatch("cloud migration", []rune("cloud"), nil)
	scattered := FuzzyMatch("c-something l-other o-long u-inner d-done", []rune("cloud"), nil)
	if tight.Score <= 0 || scattered.Score <= 0 {
		t.Fatal("both texts should match")
	}
	if tight.Score <= scattered.Score {
		t.Errorf("contiguous match score %d should beat scattered %d", tight.Score, scattered.Score)
	}
}
