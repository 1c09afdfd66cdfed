// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

import "math/bits"

// Cost Model (spec.md §4.1): pure functions returning exact bit-lengths.
// Grounded on lenOfCodedMatch's/minLazyMatchGain's style (compress9x.go) of
// small integer bit-accounting helpers with no floats.

// tokenSize is the one-bit command-kind flag preceding every command.
const tokenSize = 1

// matchFlagPenalty is the score bump applied to every non-rep match; a set
// flags bit 0 adds one more (spec.md §4.5).
const matchFlagPenalty = 3

// repMatchScoreBump is the secondary tiebreak bump applied when an arrival
// extends via a rep-match (spec.md §4.5).
const repMatchScoreBump = 2

// eliasGammaBits returns the bit-length of the Elias-gamma code for v >= 1.
func eliasGammaBits(v int) int {
	if v < 1 {
		v = 1
	}
	return bits.Len(uint(v))*2 - 1
}

// literalRunBits returns the bit-length of a literal-run-length code for run
// length l (0 if l == 0: an empty run costs nothing).
func literalRunBits(l int) int {
	if l == 0 {
		return 0
	}
	return tokenSize + eliasGammaBits(l)
}

// offsetBits returns the bit-length of an offset code for offset o >= 1:
// the high-bits Elias code plus 7 (not 8) bits for the low byte, since its
// 8th bit is the length code's redirected first bit (emitter.go,
// bitEmitter.redirectFirstBitTo) and is already counted by
// matchLenBitsNonRep.
func offsetBits(o int) int {
	if o <= 128 {
		return 8
	}
	return 7 + eliasGammaBits(((o-1)>>7)+1)
}

// matchLenBitsNonRep returns the bit-length of a non-rep match-length code
// for encoded length k = actualLen - MinEncodedMatchSize.
func matchLenBitsNonRep(k int) int {
	return eliasGammaBits(k + 1)
}

// matchLenBitsRep returns the bit-length of a rep match-length code for
// encoded length k = actualLen - MinEncodedMatchSize.
func matchLenBitsRep(k int) int {
	return eliasGammaBits(k + 2)
}

// nonRepMatchCommandBits returns the full bit-length of a non-rep match
// command of length actualLen at offset o (the command-kind token, the
// offset code, and the length code).
func nonRepMatchCommandBits(actualLen, o int) int {
	k := actualLen - MinEncodedMatchSize
	return tokenSize + matchLenBitsNonRep(k) + offsetBits(o)
}

// repMatchCommandBits returns the full bit-length of a rep-match command of
// length actualLen (the command-kind token plus the length code; no offset
// is coded).
func repMatchCommandBits(actualLen int) int {
	k := actualLen - MinEncodedMatchSize
	return tokenSize + matchLenBitsRep(k)
}
