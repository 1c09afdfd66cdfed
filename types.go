// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// match is one candidate back-reference at some input position (spec.md §3).
// length == 0 is the sentinel terminating a position's slot array.
type match struct {
	offset uint32 // backward distance, in [MinOffset, MaxOffset]
	length uint16 // match length; 0 is the terminator sentinel
	flags  uint8  // bit 0: score-penalty flag (see cost.go matchFlagPenalty)
	depth  uint16 // if > 0, this entry also implicitly represents
	// (offset-depth, length-depth); augmentedDepthFlag marks a
	// speculative/augmented entry rather than a raw-finder one.
}

// isAugmented reports whether this match was synthesized by the Match
// Augmenter rather than found by the raw match finder.
func (m match) isAugmented() bool {
	return m.depth&augmentedDepthFlag != 0
}

// depthAmount returns the actual decrement amount, stripping the augmented flag.
func (m match) depthAmount() uint16 {
	return m.depth &^ augmentedDepthFlag
}

// fromSlot identifies the predecessor of an arrival on the DP back-chain
// (design note §9: replaces the 0/1..N/-1 packed convention with a tagged
// value). Zero value is slotEmpty.
type fromSlot int32

const (
	slotEmpty fromSlot = 0  // no predecessor; this arrival slot is unused
	slotStart fromSlot = -1 // predecessor is the block-start sentinel
)

// slotIndex returns the 0-based predecessor slot index and whether this
// value names a real predecessor slot (i.e. is neither empty nor the start
// sentinel).
func (s fromSlot) slotIndex() (int, bool) {
	if s <= slotEmpty {
		return 0, false
	}
	return int(s) - 1, true
}

// fromSlotAt builds a fromSlot value naming predecessor slot index idx (0-based).
func fromSlotAt(idx int) fromSlot {
	return fromSlot(idx + 1)
}

// arrival is one DP state at an input position (spec.md §3).
type arrival struct {
	cost        uint32 // accumulated bit-length from start of block
	score       uint32 // secondary tiebreak
	repOffset   uint32 // offset a rep-match would reuse next
	repPos      uint32 // input position where repOffset was last established
	fromPos     uint32 // predecessor arrival's input position
	fromSlotIdx fromSlot
	matchLen    uint16 // 0 = arrived via literal; >0 = arrived via match of this length
	numLiterals uint32 // consecutive literals ending at this arrival (0 if via match)
}

// sentinelCost marks an empty/unreached arrival slot.
const sentinelCost = 0x40000000

// emptyArrival returns an arrival slot in its initial, unreached state.
func emptyArrival() arrival {
	return arrival{cost: sentinelCost}
}

// live reports whether this arrival slot holds a real predecessor chain.
func (a arrival) live() bool {
	return a.fromSlotIdx != slotEmpty
}

// finalMatch is the post-traceback, per-position parse decision (spec.md §3).
// length == 0 means a literal; length == -1 means "consumed by a previous
// multi-byte match" (reducer scratch); length >= MinEncodedMatchSize with
// offset > 0 is a match.
type finalMatch struct {
	offset uint32
	length int32
}

const consumedByMatch int32 = -1

// visited dedupes Rep-Insertion Helper work per input position (spec.md §3).
type visited struct {
	inner uint32
	outer uint32
}

// blockState is the only state persisted across blocks (spec.md §3).
type blockState struct {
	curRepOffset    uint32
	pendingLiterals int

	// bit emitter cursor
	pendingByteIdx int // -1 means no pending byte (emitCursorNone)
	pendingBitMask uint8

	// firstCommandEmitted is false only before the very first command of
	// the very first block, which by ZX0 convention is always a literal
	// run and carries no leading token bit.
	firstCommandEmitted bool
}

// emitCursorNone marks "no pending byte" for blockState.pendingByteIdx.
const emitCursorNone = -1

// newBlockState returns the initial state for the first block of a stream.
func newBlockState() blockState {
	return blockState{curRepOffset: 1, pendingByteIdx: emitCursorNone}
}
