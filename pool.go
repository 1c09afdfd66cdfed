// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

import "sync"

// compressorCtx owns every per-block scratch array the parser pipeline
// needs, reused block-to-block and pooled across Compress calls. Grounded on
// hcDictPool's/slidingWindowDictPool's shape (compress_1x_999.go,
// sliding_window_pool.go): a pooled struct of reusable buffers, recycled via
// acquire/release rather than reallocated per call.
type compressorCtx struct {
	matchTable [][]match
	arrivals   [][]arrival
	rle        []uint32
	visitedArr []visited
	bestMatch  []finalMatch
}

var compressorCtxPool = sync.Pool{
	New: func() any {
		return &compressorCtx{}
	},
}

// acquireCompressorCtx gets a compressorCtx from the pool, sized to hold at
// least windowLen positions.
func acquireCompressorCtx(windowLen int) *compressorCtx {
	ctx := compressorCtxPool.Get().(*compressorCtx) //nolint:errcheck // pool always yields *compressorCtx
	ctx.grow(windowLen)
	return ctx
}

// releaseCompressorCtx returns ctx to the pool. The backing arrays are kept
// (not cleared) since every consumer re-initializes the slots it reads.
func releaseCompressorCtx(ctx *compressorCtx) {
	if ctx == nil {
		return
	}
	compressorCtxPool.Put(ctx)
}

// grow ensures every scratch array can address windowLen positions,
// reallocating (and over-provisioning by a quarter to amortize repeated
// growth) only when the current capacity is insufficient.
func (c *compressorCtx) grow(windowLen int) {
	if cap(c.rle) < windowLen {
		n := growCapacity(windowLen)
		c.rle = make([]uint32, windowLen, n)
		c.visitedArr = make([]visited, windowLen, n)
		c.bestMatch = make([]finalMatch, windowLen, n)

		newMatchTable := make([][]match, n)
		for i := range newMatchTable {
			newMatchTable[i] = make([]match, NMatchesPerIndex)
		}
		c.matchTable = newMatchTable[:windowLen]

		newArrivals := make([][]arrival, n)
		for i := range newArrivals {
			newArrivals[i] = make([]arrival, NArrivalsPerPosition)
		}
		c.arrivals = newArrivals[:windowLen]
		return
	}

	c.rle = c.rle[:windowLen]
	c.visitedArr = c.visitedArr[:windowLen]
	c.bestMatch = c.bestMatch[:windowLen]
	c.matchTable = c.matchTable[:windowLen]
	c.arrivals = c.arrivals[:windowLen]
}

// resetMatchTable clears every slot in matchTable[from:to] back to the empty
// (zero-length) terminator state, ready for a fresh raw-match enumeration
// and augmentation pass.
func (c *compressorCtx) resetMatchTable(from, to int) {
	for i := from; i < to; i++ {
		row := c.matchTable[i]
		for j := range row {
			row[j] = match{}
		}
	}
}

// resetVisited clears the rep-insertion dedupe markers for [from,to).
func (c *compressorCtx) resetVisited(from, to int) {
	for i := from; i < to; i++ {
		c.visitedArr[i] = visited{}
	}
}

func growCapacity(n int) int {
	return n + n/4 + 64
}
