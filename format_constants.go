// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// ZX0 format constants: match bounds, parser fan-out, and match-table shape.

// Match offset/length bounds (spec.md §3).
const (
	// MinOffset is the smallest legal back-reference distance.
	MinOffset = 1
	// MaxOffset is the largest legal back-reference distance the wire format
	// can carry; CompressOptions.MaxWindow may clamp below this. Held one
	// notch below the 15-bit ceiling so the offset high-code never reaches
	// the reserved EOD sentinel value (256).
	MaxOffset = 32640
	// MinEncodedMatchSize is the shortest match length the format encodes.
	MinEncodedMatchSize = 2
	// LeaveAloneMatchSize is the length threshold above which the parser only
	// considers the full match length, never a truncation, to avoid
	// quadratic blow-up on long matches.
	LeaveAloneMatchSize = 32
	// LcpMax bounds how far any single match or RLE run is extended.
	LcpMax = 65535
	// MaxVarLen is an upper bound for candidate lengths and literal runs,
	// chosen well above any practical BLOCK_SIZE. No code in this package
	// reads it.
	MaxVarLen = 1 << 20
)

// matchTableSkipThreshold: once a raw match reaches this length, remaining
// match-table slots at that position are skipped (spec.md §4.5).
const matchTableSkipThreshold = 512

// Parser fan-out (spec.md §3): arrivals kept per position and match
// candidates kept per position.
const (
	// NArrivalsPerPosition is the number of arrival slots allocated per
	// position; a level's pass-2 width (parserLevelParams.nArrivals) is at
	// most this.
	NArrivalsPerPosition = 16
	// NMatchesPerIndex is the number of match-table slots per position.
	NMatchesPerIndex = 16
)

// augmentedDepthFlag marks a match-table entry inserted by the Match
// Augmenter (speculative/near-position match) rather than the raw match
// finder, per spec.md §3 ("depth: u14" carrying this reserved high bit).
const augmentedDepthFlag = 0x4000

// repInsertMaxDepth bounds the Rep-Insertion Helper's recursive projection
// (spec.md §4.3).
const repInsertMaxDepth = 9

// offsetRecencyCacheSize is the size of the Match Augmenter's LRU offset
// recency cache (spec.md §4.2).
const offsetRecencyCacheSize = 2048

// shortMatchAugmentThreshold: Augmenter pass B only revisits positions whose
// best known match length is below this (spec.md §4.2).
const shortMatchAugmentThreshold = 8

// forwardConfirmScan bounds how far pass B scans ahead to confirm a newly
// discovered chain offset is genuinely useful before committing it
// (spec.md §4.2).
const forwardConfirmScan = 3

// augmentExtendCap bounds how far pass A greedily extends a newly found
// bigram-chain match (spec.md §4.2).
const augmentExtendCap = 128
