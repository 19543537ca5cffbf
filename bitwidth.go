package lznt1

import "math/bits"

// lengthBits returns how many low bits of a 16-bit back-reference tuple hold
// the length at the given position (bytes already coded in the current chunk).
// The remaining high bits hold the displacement. The offset width is the
// smallest that can represent a displacement reaching back to the chunk
// start, clamped to 4..12 bits, so both halves adapt as the chunk fills:
// positions up to 0x10 split 4/12, up to 0x20 split 5/11, doubling until
// 12/4 past 0x800. Encoder and decoder must agree on this split exactly.
func lengthBits(pos int) int {
	n := pos - 1
	if n < 1 {
		n = 1
	}

	offsetBits := bits.Len(uint(n))
	if offsetBits < 4 {
		offsetBits = 4
	}
	if offsetBits > 12 {
		offsetBits = 12
	}

	return 16 - offsetBits
}
