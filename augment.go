// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

import lru "github.com/hashicorp/golang-lru/v2"

// Match Augmenter (spec.md §4.2): adds two-byte matches and near-position
// matches missed by the raw match finder, using a per-bigram offset chain
// and a small offset-recency cache. Grounded on hcMatch2Table's hash-chain
// insertion shape (add/search, compress_1x_999.go), reused here for the
// bigram chain instead of the single-slot head table the raw finder keeps
// for itself.

// bigramChains threads every position sharing the same 2-byte value into a
// singly linked list, newest first.
type bigramChains struct {
	head []int32 // per 2-byte key, most recently inserted position; -1 empty
	next []int32 // per position, previous (older) position sharing its key
}

func buildBigramChains(data []byte) *bigramChains {
	c := &bigramChains{
		head: make([]int32, 1<<16),
		next: make([]int32, len(data)),
	}
	for i := range c.head {
		c.head[i] = -1
	}
	for i := 0; i+1 < len(data); i++ {
		key := hash2Key(data, i)
		c.next[i] = c.head[key]
		c.head[key] = int32(i) //nolint:gosec // G115: i bounded by len(data)
	}
	return c
}

// newOffsetRecencyCache returns the Augmenter's recency cache, keyed by
// offset mod offsetRecencyCacheSize (spec.md §4.2).
func newOffsetRecencyCache() *lru.Cache[uint32, int] {
	c, _ := lru.New[uint32, int](offsetRecencyCacheSize)
	return c
}

func filledSlots(slots []match) int {
	n := 0
	for _, m := range slots {
		if m.length == 0 {
			break
		}
		n++
	}
	return n
}

func hasOffset(slots []match, offset uint32) (int, bool) {
	for i, m := range slots {
		if m.length == 0 {
			break
		}
		if m.offset == offset {
			return i, true
		}
	}
	return 0, false
}

// appendAugmented inserts an augmented match into the first free slot of
// table[pos], or lengthens an existing non-speculative-losing entry with
// the same offset, capped to nMatches slots.
func appendAugmented(slots []match, nMatches int, offset uint32, length int, speculative bool) []match {
	if idx, ok := hasOffset(slots, offset); ok {
		if int(slots[idx].length) < length {
			slots[idx].length = uint16(length) //nolint:gosec // G115: length bounded by LcpMax
		}
		return slots
	}

	n := filledSlots(slots)
	if n >= nMatches || n >= len(slots) {
		return slots
	}

	depth := uint16(0)
	if speculative {
		depth = augmentedDepthFlag
	}
	slots[n] = match{offset: offset, length: uint16(length), depth: depth} //nolint:gosec // G115: length bounded by LcpMax
	return slots
}

// extendGreedy returns the length of the equal-byte run between data[left:]
// and data[right:], capped at cap and at the input boundary.
func extendGreedy(data []byte, left, right, cap int) int {
	limit := len(data)
	if right+cap < limit {
		limit = right + cap
	}
	return countEqualBytes(data, left, right, limit)
}

// augmentPassA runs before the first parser pass: for every position with
// spare match-table slots, walk the bigram chain and add any offset the raw
// finder missed, greedily extended up to augmentExtendCap bytes.
func augmentPassA(data []byte, matchTable [][]match, chains *bigramChains, maxWindow, nMatches int) {
	for p := 0; p+1 < len(data); p++ {
		slots := matchTable[p]
		if filledSlots(slots) >= nMatches-1 {
			continue
		}

		node := chains.next[p]
		for steps := 0; node >= 0 && p-int(node) <= maxWindow && steps < nMatches*2; steps++ {
			off := uint32(p - int(node)) //nolint:gosec // G115: bounded by maxWindow
			if _, ok := hasOffset(slots, off); !ok {
				l := extendGreedy(data, int(node), p, augmentExtendCap)
				if l >= MinEncodedMatchSize {
					slots = appendAugmented(slots, nMatches, off, l, true)
				}
			}
			node = chains.next[node]
		}

		matchTable[p] = slots
	}
}

// augmentPassB runs between parser passes: for positions whose best known
// match is still short, look further back along the bigram chain, confirm
// the candidate is genuinely useful via a short forward scan and the offset
// recency cache, then commit it and notify onNewMatch (which drives the
// Rep-Insertion Helper).
func augmentPassB(data []byte, matchTable [][]match, chains *bigramChains, maxWindow, nMatches int, recency *lru.Cache[uint32, int], onNewMatch func(pos int, offset uint32)) {
	for p := 0; p+1 < len(data); p++ {
		slots := matchTable[p]
		bestLen := 0
		for _, m := range slots {
			if m.length == 0 {
				break
			}
			if int(m.length) > bestLen {
				bestLen = int(m.length)
			}
		}
		if bestLen >= shortMatchAugmentThreshold {
			continue
		}

		node := chains.next[p]
		// Skip the first nMatches entries of the bigram chain; pass A walks
		// up to 2*nMatches of them, so pass B can revisit some of those
		// before reaching offsets further back.
		for i := 0; i < nMatches && node >= 0; i++ {
			node = chains.next[node]
		}

		for steps := 0; node >= 0 && p-int(node) <= maxWindow && steps < nMatches; steps++ {
			off := uint32(p - int(node)) //nolint:gosec // G115: bounded by maxWindow
			bucket := off % offsetRecencyCacheSize

			if cachedPos, ok := recency.Get(bucket); ok && cachedPos == p {
				if _, exists := hasOffset(slots, off); exists {
					node = chains.next[node]
					continue
				}
			}

			confirmed := false
			scanLimit := forwardConfirmScan
			if p+scanLimit > len(data) {
				scanLimit = len(data) - p
			}
			for k := 0; k < scanLimit; k++ {
				if p+k < len(data) && int(node)+k < len(data) && data[int(node)+k] == data[p+k] {
					confirmed = true
					break
				}
			}

			if confirmed {
				l := extendGreedy(data, int(node), p, augmentExtendCap)
				if l >= MinEncodedMatchSize {
					before := filledSlots(slots)
					slots = appendAugmented(slots, nMatches, off, l, true)
					recency.Add(bucket, p)
					if filledSlots(slots) > before && onNewMatch != nil {
						onNewMatch(p, off)
					}
				}
			}

			node = chains.next[node]
		}

		matchTable[p] = slots
	}
}
