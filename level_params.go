// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// parserLevelParams holds internal parameters for one compression level.
// All fields are unexported; the type is used only inside the package.
type parserLevelParams struct {
	nArrivals  int // full (pass-2) arrival-set width for this level
	nMatches   int // match-table slots per position
	searchDepth int // hash-chain probe depth in the match finder
}

// fixedLevels defines parameters for compression levels 1-9. Level 1 is the
// fastest/most conservative; level 9 searches the widest and deepest.
var fixedLevels = [9]parserLevelParams{
	{nArrivals: 4, nMatches: 4, searchDepth: 8},
	{nArrivals: 6, nMatches: 6, searchDepth: 16},
	{nArrivals: 8, nMatches: 8, searchDepth: 32},
	{nArrivals: 8, nMatches: 10, searchDepth: 64},
	{nArrivals: 12, nMatches: 12, searchDepth: 128},
	{nArrivals: 16, nMatches: 16, searchDepth: 256},
	{nArrivals: 16, nMatches: 16, searchDepth: 512},
	{nArrivals: 16, nMatches: 16, searchDepth: 1024},
	{nArrivals: 16, nMatches: 16, searchDepth: 2048},
}

// levelParamsFor returns the tuning parameters for level (1-9, clamped).
func levelParamsFor(level int) parserLevelParams {
	if level < 1 {
		level = 1
	}
	if level > 9 {
		level = 9
	}
	return fixedLevels[level-1]
}
