// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// wireByte packs a computed value to one byte as required by the ZX0 bit
// layout. Callers pass values whose low 8 bits are the serialized
// representation (e.g. the offset low-byte folded with its parity bit).
func wireByte(v int) byte {
	// #nosec G115 -- ZX0 wire bytes intentionally encode only low 8 bits.
	return byte(v & 0xff)
}
