// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// RLE Table Builder (spec.md §4.4): a single linear pass computing, for
// each position, the length of the maximal equal-byte run starting there.
// Grounded on countEqualBytes's (compress_1x_999.go) job of extending
// equal-byte runs; here the comparison is against a constant run-byte rather
// than another position, so a simple backward-fill pass is both simpler and
// exact.

// buildRLETable fills rle[i] with the length of the maximal run of
// data[i]-valued bytes starting at i, for i in [start, len(data)).
// rle must have length >= len(data).
func buildRLETable(data []byte, start int, rle []uint32) {
	n := len(data)
	if n == 0 {
		return
	}

	run := uint32(1)
	rle[n-1] = 1
	for i := n - 2; i >= start; i-- {
		if data[i] == data[i+1] {
			run++
		} else {
			run = 1
		}
		if run > LcpMax {
			run = LcpMax
		}
		rle[i] = run
	}
}
