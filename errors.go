// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

import "errors"

// Sentinel errors for compression.
var (
	// ErrOutputOverrun reports a read or write past the end of a buffer.
	// Compress does not return it: the emitter's output slice grows as needed.
	ErrOutputOverrun = errors.New("zx0: output overrun")
	// ErrOffsetOutOfRange is returned when a chosen match offset falls outside
	// [MinOffset, MaxOffset]. The emitter does not check offsets against
	// CompressOptions.MaxWindow.
	ErrOffsetOutOfRange = errors.New("zx0: match offset out of range")
	// ErrFirstCommandNotLiteral is returned when the first command of the first
	// block is not a literal run, violating the ZX0 stream convention.
	ErrFirstCommandNotLiteral = errors.New("zx0: first command of stream must be literals")
	// ErrInvalidWindow reports a MaxWindow outside [MinOffset, MaxOffset].
	// Compress replaces a zero, negative or above-MaxOffset
	// CompressOptions.MaxWindow with MaxOffset before checking, so it does
	// not return this error.
	ErrInvalidWindow = errors.New("zx0: invalid max window")
	// ErrInvalidDictionarySize is returned when DictionarySize exceeds the input length.
	ErrInvalidDictionarySize = errors.New("zx0: invalid dictionary size")

	// ErrParserInternal names an internal invariant violation of the forward
	// parser. No function in this package returns it.
	ErrParserInternal = errors.New("zx0: internal parser error")
	// ErrReducerInternal names an internal invariant violation of the
	// command reducer. No function in this package returns it.
	ErrReducerInternal = errors.New("zx0: internal reducer error")
	// ErrEmitterInternal names an internal invariant violation of the bit
	// emitter. No function in this package returns it.
	ErrEmitterInternal = errors.New("zx0: internal emitter error")
)
