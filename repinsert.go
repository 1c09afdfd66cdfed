// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta/Source: github.com/woozymasta/zx0

package zx0

// Rep-Insertion Helper (spec.md §4.3): when a match with offset m is
// discovered while processing position p during the first parser pass, any
// arrival at p that is mid-literal-run and carries a different rep-offset r
// established back at rep_pos would benefit from a synthetic match
// proposing "use m instead" at rep_pos, provided the bytes actually agree
// there. Those insertions land at positions the first pass has already
// swept past, which is fine: the second pass re-sweeps the whole block
// against the now-enriched match table.
//
// Implemented iteratively with an explicit work queue per design note §9,
// bounded at repInsertMaxDepth, rather than recursively.

type repInsertWork struct {
	pos    int
	offset uint32
	depth  int
}

// repInsertionHelper projects offset forward (really: backward through the
// rep-offset history, which the enriched table then surfaces to pass 2)
// from the arrivals recorded at pos.
func repInsertionHelper(pos int, offset uint32, data []byte, arrivals [][]arrival, matchTable [][]match, visitedArr []visited, rleTable []uint32, blockEnd, nMatches int) {
	queue := []repInsertWork{{pos: pos, offset: offset, depth: 0}}

	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		if w.pos < 0 || w.pos >= len(arrivals) {
			continue
		}

		for _, a := range arrivals[w.pos] {
			if !a.live() || a.numLiterals == 0 || a.repOffset == w.offset {
				continue
			}

			q := int(a.repPos)
			if q < 0 || q >= len(visitedArr) {
				continue
			}
			if visitedArr[q].outer == w.offset+1 {
				continue
			}
			visitedArr[q].outer = w.offset + 1

			if filledSlots(matchTable[q]) > 0 {
				continue
			}

			srcPos := q - int(w.offset)
			if srcPos < 0 || q >= blockEnd || data[q] != data[srcPos] {
				continue
			}

			minRun := rleTable[srcPos]
			if rleTable[q] < minRun {
				minRun = rleTable[q]
			}

			length := int(minRun)
			if length < 1 {
				length = 1
			}
			for q+length < blockEnd && srcPos+length < len(data) && data[q+length] == data[srcPos+length] {
				length++
			}
			if length > LcpMax {
				length = LcpMax
			}
			if length < MinEncodedMatchSize {
				continue
			}

			matchTable[q] = appendAugmented(matchTable[q], nMatches, w.offset, length, true)

			if w.depth+1 <= repInsertMaxDepth {
				queue = append(queue, repInsertWork{pos: q, offset: w.offset, depth: w.depth + 1})
			}
		}
	}
}
