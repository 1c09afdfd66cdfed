// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// Forward Parser (spec.md §4.5): the core multi-arrival dynamic-programming
// sweep. Grounded on compress9x.go's optimal-cost forward sweep shape
// (its cost-table walk), generalized from "one best predecessor per
// position" to an N-wide Pareto-style arrival set distinguished by
// rep-offset, per spec.md §3.

// clearArrivalRow resets a row to the empty sentinel state.
func clearArrivalRow(row []arrival) {
	for i := range row {
		row[i] = emptyArrival()
	}
}

// seedParserPass resets arrivals[start:end+1] and plants the block-start
// sentinel arrival at arrivals[start][0].
func seedParserPass(arrivals [][]arrival, start, end int, initialRepOffset uint32) {
	for p := start; p <= end; p++ {
		clearArrivalRow(arrivals[p])
	}
	arrivals[start][0] = arrival{
		cost:        0,
		repOffset:   initialRepOffset,
		repPos:      uint32(start),
		fromSlotIdx: slotStart,
	}
}

// insertArrival applies the arrival-set insertion rule (spec.md §4.5) to
// dest, a row with effective width capacity. reserve is 1 for literal/rep
// candidates and 2 for non-rep candidates: the quick-reject check compares
// against the cost held at dest[capacity-reserve] directly (spec.md §4.5
// rule 1: "nArrivalsPerPosition-1 for literals/rep, nArrivalsPerPosition-2
// for non-rep"), not one slot tighter — a non-rep candidate that would still
// land within the reserved tail is given the chance to compete for it.
func insertArrival(dest []arrival, capacity, reserve int, cand arrival) {
	if capacity <= 0 {
		return
	}
	refIdx := capacity - reserve
	if refIdx < 0 {
		refIdx = 0
	}
	if refIdx > capacity-1 {
		refIdx = capacity - 1
	}

	if dest[refIdx].cost < sentinelCost && cand.cost > dest[refIdx].cost {
		return
	}

	n := 0
	for n < capacity && (dest[n].cost < cand.cost || (dest[n].cost == cand.cost && dest[n].score <= cand.score)) {
		n++
	}
	if n >= capacity {
		return
	}

	for i := 0; i < n; i++ {
		if dest[i].cost < sentinelCost && dest[i].repOffset == cand.repOffset {
			return
		}
	}
	for i := n; i < capacity && dest[i].cost == cand.cost; i++ {
		if dest[i].repOffset == cand.repOffset {
			return
		}
	}

	for i := capacity - 1; i > n; i-- {
		dest[i] = dest[i-1]
	}
	dest[n] = cand
}

// enumerateLengths returns the candidate encoded lengths to try for a match
// table entry of maxLen, per the candidate length enumeration rule: the full
// range from MinEncodedMatchSize when short, or only maxLen itself once the
// match is long enough that trying every intermediate length would blow up
// the sweep.
func enumerateLengths(maxLen int) []int {
	if maxLen < MinEncodedMatchSize {
		return nil
	}
	if maxLen >= LeaveAloneMatchSize {
		return []int{maxLen}
	}
	out := make([]int, 0, maxLen-MinEncodedMatchSize+1)
	for k := MinEncodedMatchSize; k <= maxLen; k++ {
		out = append(out, k)
	}
	return out
}

// parserPassParams bundles the fixed inputs to one forward-parser sweep.
type parserPassParams struct {
	data             []byte
	start, end       int
	arrivals         [][]arrival
	matchTable       [][]match
	visitedArr       []visited
	rleTable         []uint32
	capacity         int
	nMatches         int
	withRepInsertion bool
	initialRepOffset uint32
}

// runParserPass sweeps [start,end) once, writing into arrivals[start+1..end].
func runParserPass(pp parserPassParams) {
	seedParserPass(pp.arrivals, pp.start, pp.end, pp.initialRepOffset)

	for p := pp.start; p < pp.end; p++ {
		src := pp.arrivals[p][:pp.capacity]
		for j := 0; j < pp.capacity; j++ {
			s := src[j]
			if s.cost >= sentinelCost {
				continue
			}
			extendLiteral(pp.arrivals, p, j, s, pp.capacity)
			extendRepMatch(pp.data, pp.arrivals, p, j, s, pp.end, pp.capacity)
			extendTableMatches(pp, p, j, s)
		}
	}
}

func extendLiteral(arrivals [][]arrival, p, slotIdx int, s arrival, capacity int) {
	added := 8 - literalRunBits(int(s.numLiterals)) + literalRunBits(int(s.numLiterals)+1)
	cand := arrival{
		cost:        s.cost + uint32(added),
		score:       s.score,
		repOffset:   s.repOffset,
		repPos:      s.repPos,
		fromPos:     uint32(p),
		fromSlotIdx: fromSlotAt(slotIdx),
		matchLen:    0,
		numLiterals: s.numLiterals + 1,
	}
	insertArrival(arrivals[p+1], capacity, 1, cand)
}

func extendRepMatch(data []byte, arrivals [][]arrival, p, slotIdx int, s arrival, blockEnd, capacity int) {
	if s.numLiterals == 0 {
		return
	}
	srcPos := p - int(s.repOffset)
	if srcPos < 0 {
		return
	}
	maxLen := countEqualBytes(data, srcPos, p, blockEnd)
	if maxLen > LcpMax {
		maxLen = LcpMax
	}
	for _, k := range enumerateLengths(maxLen) {
		cand := arrival{
			cost:        s.cost + uint32(repMatchCommandBits(k)),
			score:       s.score + repMatchScoreBump,
			repOffset:   s.repOffset,
			repPos:      s.repPos,
			fromPos:     uint32(p),
			fromSlotIdx: fromSlotAt(slotIdx),
			matchLen:    uint16(k), //nolint:gosec // G115: k bounded by LcpMax
			numLiterals: 0,
		}
		dest := p + k
		if dest >= len(arrivals) {
			continue
		}
		insertArrival(arrivals[dest], capacity, 1, cand)
	}
}

func extendTableMatches(pp parserPassParams, p, slotIdx int, s arrival) {
	slots := pp.matchTable[p]
	for si := range slots {
		m := slots[si]
		if m.length == 0 {
			break
		}

		if pp.withRepInsertion {
			repInsertionHelper(p, m.offset, pp.data, pp.arrivals, pp.matchTable, pp.visitedArr, pp.rleTable, pp.end, pp.nMatches)
		}

		tryOffsetLength(pp, p, slotIdx, s, m.offset, int(m.length), m.flags)
		if d := m.depthAmount(); d > 0 && int(d) < int(m.length) && uint32(d) < m.offset {
			tryOffsetLength(pp, p, slotIdx, s, m.offset-uint32(d), int(m.length)-int(d), m.flags)
		}

		if int(m.length) >= matchTableSkipThreshold {
			break
		}
	}
}

func tryOffsetLength(pp parserPassParams, p, slotIdx int, s arrival, offset uint32, maxLen int, flags uint8) {
	flagBit := uint32(flags & 1)
	for _, k := range enumerateLengths(maxLen) {
		if s.numLiterals == 0 || s.repOffset != offset {
			cand := arrival{
				cost:        s.cost + uint32(nonRepMatchCommandBits(k, int(offset))),
				score:       s.score + matchFlagPenalty + flagBit,
				repOffset:   offset,
				repPos:      uint32(p),
				fromPos:     uint32(p),
				fromSlotIdx: fromSlotAt(slotIdx),
				matchLen:    uint16(k), //nolint:gosec // G115: k bounded by LcpMax
				numLiterals: 0,
			}
			dest := p + k
			if dest < len(pp.arrivals) {
				insertArrival(pp.arrivals[dest], pp.capacity, 2, cand)
			}
		}
	}
}

// traceback follows the winning arrival at end back to start (second pass
// only), writing one finalMatch per covered position into bestMatch, and
// returns the accepting arrival's total cost.
func traceback(arrivals [][]arrival, start, end int, bestMatch []finalMatch) uint32 {
	for i := start; i < end; i++ {
		bestMatch[i] = finalMatch{}
	}

	totalCost := arrivals[end][0].cost
	cur, slot := end, 0

	for cur > start {
		a := arrivals[cur][slot]
		fromP := int(a.fromPos)
		if a.matchLen > 0 {
			bestMatch[fromP] = finalMatch{offset: a.repOffset, length: int32(a.matchLen)}
			for k := 1; k < int(a.matchLen); k++ {
				bestMatch[fromP+k] = finalMatch{length: consumedByMatch}
			}
		} else {
			bestMatch[fromP] = finalMatch{}
		}

		idx, ok := a.fromSlotIdx.slotIndex()
		if !ok {
			break
		}
		slot = idx
		cur = fromP
	}

	return totalCost
}
