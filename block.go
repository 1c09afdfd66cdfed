// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// Block Driver (spec.md §4.8): orchestrates one block's full pipeline (match
// enumeration, augmentation, two parser passes, reduction, emission) and
// carries BlockState across blocks. Grounded on compress9x's/
// compress999NoAlloc's top-level orchestration (compress9x.go,
// compress_1x_999.go), which drives an analogous sequence of passes over a
// pooled context.

// runBlock executes the full per-block pipeline over window, whose local
// index space runs [0, len(window)); blockStart/blockEnd name the slice of
// window that belongs to the current block (bytes before blockStart are
// window/dictionary context available only as match sources).
func runBlock(window []byte, blockStart, blockEnd int, ctx *compressorCtx, lp parserLevelParams, o CompressOptions, st *blockState, e *bitEmitter, stats *statsCollector, isLastBlock bool) error {
	ctx.resetMatchTable(0, len(window))
	ctx.resetVisited(0, len(window))

	finder := newRawMatchFinder(window, o.MaxWindow, lp.searchDepth)
	for p := 0; p < blockEnd; p++ {
		found := finder.indexAndFind(p, lp.nMatches)
		if p >= blockStart {
			copy(ctx.matchTable[p], found)
		}
	}

	buildRLETable(window, 0, ctx.rle[:len(window)])

	chains := buildBigramChains(window)
	augmentPassA(window, ctx.matchTable[:len(window)], chains, o.MaxWindow, lp.nMatches)

	pass1Capacity := lp.nArrivals / 2
	if pass1Capacity < 1 {
		pass1Capacity = 1
	}
	runParserPass(parserPassParams{
		data: window, start: blockStart, end: blockEnd,
		arrivals: ctx.arrivals, matchTable: ctx.matchTable,
		visitedArr: ctx.visitedArr, rleTable: ctx.rle,
		capacity: pass1Capacity, nMatches: lp.nMatches,
		withRepInsertion: true, initialRepOffset: st.curRepOffset,
	})

	recency := newOffsetRecencyCache()
	augmentPassB(window, ctx.matchTable[:len(window)], chains, o.MaxWindow, lp.nMatches, recency,
		func(pos int, offset uint32) {
			repInsertionHelper(pos, offset, window, ctx.arrivals, ctx.matchTable, ctx.visitedArr, ctx.rle, blockEnd, lp.nMatches)
		})

	runParserPass(parserPassParams{
		data: window, start: blockStart, end: blockEnd,
		arrivals: ctx.arrivals, matchTable: ctx.matchTable,
		visitedArr: ctx.visitedArr, rleTable: ctx.rle,
		capacity: lp.nArrivals, nMatches: lp.nMatches,
		withRepInsertion: false, initialRepOffset: st.curRepOffset,
	})
	traceback(ctx.arrivals, blockStart, blockEnd, ctx.bestMatch)

	reduceCommands(window, ctx.bestMatch, blockStart, blockEnd, st.curRepOffset)

	if stats != nil {
		stopAt, _ := trimTrailingLiterals(ctx.bestMatch, blockStart, blockEnd, isLastBlock)
		collectBlockStats(stats, ctx.bestMatch, blockStart, stopAt, st.curRepOffset)
	}

	pendingLiterals, err := emitBlock(e, window, ctx.bestMatch, blockStart, blockEnd, st, o.Inverted, isLastBlock)
	if err != nil {
		return err
	}
	st.pendingLiterals = pendingLiterals
	return nil
}
