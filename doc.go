// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

/*
Package zx0 implements an optimal (near-optimal) parser and bitstream
emitter for the ZX0 compression format, a variable-length LZ77-style code
designed for extreme-constrained decoders (8-bit home computers).

The package exposes only compression. ZX0 streams produced here decode with
any conforming ZX0 decoder; this package carries an internal reference
decoder used only by its own tests.

# Compress

Options may be nil (uses level 1):

	out, stats, err := zx0.Compress(data, nil)
	out, stats, err := zx0.Compress(data, &zx0.CompressOptions{Level: 9, Inverted: true})

Compress runs, per block: match finding, match augmentation, the forward
multi-arrival DP parser (two passes), the command reducer, and the bit
emitter. Blocks are chained: the last rep-offset and any undecided trailing
literal run roll over from one block into the next.
*/
package zx0
