// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// CompressOptions configures the optimal parser and bit emitter.
type CompressOptions struct {
	// Level selects search depth and arrival-set width (1-9, higher = better
	// ratio, slower). See levelParamsFor/fixedLevels in level_params.go.
	Level int

	// Inverted selects the ZX0 "V2" wire variant, which complements the
	// mantissa bits of Elias-gamma codes carrying offset-high-bits and the
	// end-of-data sentinel.
	Inverted bool

	// MaxWindow clamps the effective back-reference distance. Zero means
	// MaxOffset.
	MaxWindow int

	// DictionarySize treats the leading N bytes of input as pre-seeded
	// context: back-references may point into it, but it is never itself
	// emitted as output.
	DictionarySize int

	// BlockSize bounds per-block scratch memory and is the unit across which
	// cur_rep_offset/pending_literals/bit-cursor state is carried. Zero means
	// DefaultBlockSize.
	BlockSize int

	// ProgressFunc, if non-nil, is called after each block is emitted with
	// the number of input bytes consumed so far and the total input length.
	ProgressFunc func(done, total int)
}

// DefaultBlockSize is used when CompressOptions.BlockSize is zero.
const DefaultBlockSize = 1 << 16

// DefaultCompressOptions returns options for level 1 (fastest, most conservative ratio).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 1}
}

// normalized returns a copy of opts with zero/out-of-range fields replaced by
// their effective defaults. opts may be nil. A DictionarySize above inputLen
// is kept as is, so Compress can reject it with ErrInvalidDictionarySize.
func (opts *CompressOptions) normalized(inputLen int) CompressOptions {
	var o CompressOptions
	if opts != nil {
		o = *opts
	}

	if o.Level < 1 {
		o.Level = 1
	}
	if o.Level > 9 {
		o.Level = 9
	}
	if o.MaxWindow <= 0 || o.MaxWindow > MaxOffset {
		o.MaxWindow = MaxOffset
	}
	if o.DictionarySize < 0 {
		o.DictionarySize = 0
	}
	if o.BlockSize <= 0 {
		o.BlockSize = DefaultBlockSize
	}

	return o
}
