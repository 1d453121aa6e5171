// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching a pattern against one text.
// The zero value means no match.
type FuzzyResult struct {
	// Score ranks match quality; higher is better. Zero means the
	// pattern did not match.
	Score int

	// Positions are the rune indices of the matched characters within
	// the text, for highlight rendering. Empty when the pattern did
	// not match.
	Positions []int
}

// FuzzyMatch runs fzf's FuzzyMatchV2 algorithm against a single text.
// Matching is case-insensitive: both sides are lowercased before
// matching, so the returned positions index into the original text's
// runes. An empty pattern never matches.
//
// The slab is fzf's scratch allocation arena. Callers matching many
// texts in a loop should allocate one slab and reuse it across calls;
// nil is accepted for one-off matches.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 || text == "" {
		return FuzzyResult{}
	}

	loweredText := util.ToChars([]byte(strings.ToLower(text)))
	loweredPattern := []rune(strings.ToLower(string(pattern)))

	result, positions := algo.FuzzyMatchV2(true, true, true, &loweredText, loweredPattern, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	var matched []int
	if positions != nil {
		matched = *positions
	}
	return FuzzyResult{Score: result.Score, Positions: matched}
}

// NewSlab allocates a scratch arena sized for interactive filtering.
// The sizes match fzf's own defaults.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}
