// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// Command Reducer (spec.md §4.6): rewrites the traced-back parse left to
// right, folding in transformations the arrival DP cannot see because they
// require knowledge of the final, concrete command sequence. Grounded on the
// teacher's findBetterMatch post-pass (compress_1x_999.go), which performs
// the same kind of "look at the parse we already committed to and see if a
// local rewrite is strictly cheaper" pass.

const reducerMaxIterations = 20

// reduceCommands repeatedly rewrites bestMatch[start:end] until no rule
// fires, bounded at reducerMaxIterations passes (spec.md §8 monotonicity).
// initialRepOffset seeds the shadow rep-match-offset tracked across the run.
func reduceCommands(data []byte, bestMatch []finalMatch, start, end int, initialRepOffset uint32) {
	for iter := 0; iter < reducerMaxIterations; iter++ {
		if !reducePass(data, bestMatch, start, end, initialRepOffset) {
			return
		}
	}
}

// reducePass runs one left-to-right rewrite pass and reports whether any
// rule fired.
func reducePass(data []byte, bestMatch []finalMatch, start, end int, initialRepOffset uint32) bool {
	didReduce := false
	repMatchOffset := initialRepOffset
	literalsBefore := 0

	i := start
	for i < end {
		fm := bestMatch[i]

		if fm.length == consumedByMatch {
			i++
			continue
		}

		if fm.length == 0 {
			if literalsBefore > 0 && i+1 < end && tryAbsorbLiteral(data, bestMatch, i) {
				didReduce = true
				fm = bestMatch[i]
			} else {
				literalsBefore++
				i++
				continue
			}
		}

		length := int(fm.length)
		offset := fm.offset

		if tryOffsetSubstitutionToRep(data, bestMatch, i, length, offset, literalsBefore, repMatchOffset, end) {
			didReduce = true
			offset = repMatchOffset
		} else if newOffset, newLen, ok := tryOffsetSubstitutionToMatchNext(data, bestMatch, i, length, offset, end); ok {
			didReduce = true
			for k := newLen; k < length; k++ {
				bestMatch[i+k] = finalMatch{}
			}
			offset = newOffset
			length = newLen
		}

		if tryMatchToLiterals(bestMatch, i, length, offset, literalsBefore) {
			didReduce = true
			repMatchOffset = offset
			literalsBefore = 0
			i++
			continue
		}

		if newLen, ok := tryJoinMatches(data, bestMatch, i, length, offset, end); ok {
			didReduce = true
			length = newLen
		}

		bestMatch[i] = finalMatch{offset: offset, length: int32(length)} //nolint:gosec // G115: length bounded by LcpMax
		repMatchOffset = offset
		literalsBefore = 0
		i += length
	}

	return didReduce
}

// tryAbsorbLiteral implements rule 1: a literal immediately followed by a
// match can be folded into the match (lengthening it by one, moving its
// start back by one) when the length code grows by at most 8 bits, the
// size of the literal byte it replaces.
// i must name a literal position with a match starting at i+1.
func tryAbsorbLiteral(data []byte, bestMatch []finalMatch, i int) bool {
	next := bestMatch[i+1]
	if next.length < MinEncodedMatchSize {
		return false
	}

	srcPos := i - int(next.offset)
	if srcPos < 0 || srcPos >= len(data) || data[i] != data[srcPos] {
		return false
	}

	oldLen := int(next.length)
	newLen := oldLen + 1
	oldBits := matchLenBitsNonRep(oldLen - MinEncodedMatchSize)
	newBits := matchLenBitsNonRep(newLen - MinEncodedMatchSize)
	if newBits-oldBits > 8 {
		return false
	}

	bestMatch[i] = finalMatch{offset: next.offset, length: int32(newLen)} //nolint:gosec // G115: newLen bounded by LcpMax
	bestMatch[i+1] = finalMatch{length: consumedByMatch}
	return true
}

// tryOffsetSubstitutionToRep implements rule 2: a non-rep match can switch
// to the shadow rep-offset when the bytes still agree and doing so saves
// bits (dropping the offset code entirely).
func tryOffsetSubstitutionToRep(data []byte, bestMatch []finalMatch, i, length int, offset uint32, literalsBefore int, repMatchOffset uint32, end int) bool {
	if literalsBefore == 0 || offset == repMatchOffset || repMatchOffset == 0 {
		return false
	}
	if !sameBytesAtOffset(data, i, length, offset, repMatchOffset, end) {
		return false
	}

	oldBits := nonRepMatchCommandBits(length, int(offset))
	newBits := repMatchCommandBits(length)
	return newBits < oldBits
}

// tryOffsetSubstitutionToMatchNext implements rule 3: switch the current
// match's offset to the following match's offset so the following match
// becomes a rep-match, either in full or via a partial shortening whose
// residual becomes literals, whichever the cost model prefers.
func tryOffsetSubstitutionToMatchNext(data []byte, bestMatch []finalMatch, i, length int, offset uint32, end int) (uint32, int, bool) {
	j := i + length
	if j >= end {
		return offset, length, false
	}
	next := bestMatch[j]
	if next.length < MinEncodedMatchSize || next.offset == offset {
		return offset, length, false
	}

	if sameBytesAtOffset(data, i, length, offset, next.offset, end) {
		oldBits := nonRepMatchCommandBits(length, int(offset)) + repMatchCommandBits(int(next.length))
		newBits := repMatchCommandBits(length) + repMatchCommandBits(int(next.length))
		if newBits < oldBits {
			return next.offset, length, true
		}
	}

	// Partial variant: shorten the current match so its tail becomes
	// literals absorbed by the following rep-match, only when nMaxLen >= 2
	// (spec.md §9 open question: nMaxLen == 1 is treated as intentionally
	// skipped).
	for shortenBy := 1; shortenBy < length-MinEncodedMatchSize+1; shortenBy++ {
		nMaxLen := length - shortenBy
		if nMaxLen < 2 {
			break
		}
		if !sameBytesAtOffset(data, i, nMaxLen, offset, next.offset, end) {
			continue
		}
		oldBits := nonRepMatchCommandBits(length, int(offset))
		newBits := repMatchCommandBits(nMaxLen) + literalRunBits(shortenBy)
		if newBits < oldBits {
			return next.offset, nMaxLen, true
		}
	}

	return offset, length, false
}

// tryMatchToLiterals implements rule 4: short matches that cost more than
// the literals (plus re-coded surrounding runs) they would replace are
// turned back into literals.
func tryMatchToLiterals(bestMatch []finalMatch, i, length int, offset uint32, literalsBefore int) bool {
	if length >= 9 {
		return false
	}

	oldBits := nonRepMatchCommandBits(length, int(offset))
	oldLiteralBits := literalRunBits(literalsBefore)
	newLiteralBits := literalRunBits(literalsBefore + length)
	added := newLiteralBits - oldLiteralBits + 8*length
	if added >= oldBits {
		return false
	}

	for k := 0; k < length; k++ {
		bestMatch[i+k] = finalMatch{}
	}
	return true
}

// tryJoinMatches implements rule 5: two back-to-back matches that, when
// concatenated, encode as cheaply or more cheaply than the pair and whose
// payload still agrees with the source bytes are merged into one.
func tryJoinMatches(data []byte, bestMatch []finalMatch, i, length int, offset uint32, end int) (int, bool) {
	j := i + length
	if j >= end {
		return length, false
	}
	next := bestMatch[j]
	if next.length < MinEncodedMatchSize {
		return length, false
	}

	combinedLen := length + int(next.length)
	if combinedLen > LcpMax {
		return length, false
	}
	if !sameBytesAtOffset(data, i, combinedLen, offset, offset, end) {
		return length, false
	}

	oldBits := nonRepMatchCommandBits(length, int(offset)) + nonRepMatchCommandBits(int(next.length), int(next.offset))
	newBits := nonRepMatchCommandBits(combinedLen, int(offset))
	if newBits > oldBits {
		return length, false
	}

	for k := length; k < combinedLen; k++ {
		bestMatch[i+k] = finalMatch{length: consumedByMatch}
	}
	return combinedLen, true
}

// sameBytesAtOffset reports whether replaying length bytes starting at i
// using candidateOffset reproduces the same bytes as using offset.
func sameBytesAtOffset(data []byte, i, length int, _, candidateOffset uint32, end int) bool {
	srcPos := i - int(candidateOffset)
	if srcPos < 0 || i+length > end || i+length > len(data) {
		return false
	}
	for k := 0; k < length; k++ {
		if data[i+k] != data[srcPos+k] {
			return false
		}
	}
	return true
}
