package lznt1

import (
	"encoding/binary"
	"fmt"
)

// tagAccumulator builds tag groups on the encode side: one flag byte per up
// to 8 items, bit set for a 2-byte back-reference, clear for a 1-byte
// literal. Items are staged in buf (worst case 8 references = 16 bytes) and
// written out together with the flag byte when the group fills or flushes.
type tagAccumulator struct {
	tag   byte
	items int
	buf   [2 * TagGroupSize]byte
	n     int
}

// pushLiteral stages one literal byte.
func (a *tagAccumulator) pushLiteral(b byte, out []byte) []byte {
	a.buf[a.n] = b
	a.n++

	return a.commit(out)
}

// pushReference stages one packed back-reference tuple (little-endian).
func (a *tagAccumulator) pushReference(tuple uint16, out []byte) []byte {
	a.tag |= 1 << a.items
	binary.LittleEndian.PutUint16(a.buf[a.n:], tuple)
	a.n += 2

	return a.commit(out)
}

// commit counts the staged item and writes the group once it holds 8 items.
func (a *tagAccumulator) commit(out []byte) []byte {
	a.items++
	if a.items == TagGroupSize {
		return a.flush(out)
	}

	return out
}

// flush writes any staged group (flag byte first) and resets the state.
// A short group is valid only as the last group of a chunk payload.
func (a *tagAccumulator) flush(out []byte) []byte {
	if a.items == 0 {
		return out
	}

	out = append(out, a.tag)
	out = append(out, a.buf[:a.n]...)
	a.tag = 0
	a.items = 0
	a.n = 0

	return out
}

// decodeGroup decodes one tag group from body starting at in, appending to
// dst. base is the output index of the current chunk's first byte; the
// back-reference window never reaches before it, and the decoded chunk never
// grows past ChunkSize through a reference. Both bounds are checked before
// any byte is written. The payload may end at any literal boundary (short
// final group); ending inside a 2-byte reference is ErrTruncatedChunk.
func decodeGroup(body []byte, in int, dst []byte, base int) ([]byte, int, error) {
	tag := body[in]
	in++

	// All-literal group with all 8 bytes present: copy in one step.
	if tag == 0 && in+TagGroupSize <= len(body) {
		dst = append(dst, body[in:in+TagGroupSize]...)

		return dst, in + TagGroupSize, nil
	}

	for i := 0; i < TagGroupSize; i++ {
		if tag>>uint(i)&1 == 0 {
			if in >= len(body) {
				return dst, in, nil
			}

			dst = append(dst, body[in])
			in++
		} else {
			if in+2 > len(body) {
				return nil, in, fmt.Errorf("%w: %d of 2 bytes", ErrTruncatedChunk, len(body)-in)
			}

			tuple := binary.LittleEndian.Uint16(body[in : in+2])
			in += 2

			pos := len(dst) - base
			split := lengthBits(pos)
			length := int(tuple&(1<<split-1)) + MinMatch
			disp := int(tuple>>split) + 1

			if disp > pos {
				return nil, in, fmt.Errorf("%w: displacement %d at position %d", ErrMalformedReference, disp, pos)
			}
			if pos+length > ChunkSize {
				return nil, in, fmt.Errorf("%w: length %d at position %d exceeds chunk", ErrMalformedReference, length, pos)
			}

			// Copy forward one byte at a time: disp < length is legal and
			// repeats already-written bytes (disp 1 is a byte run).
			if disp == 1 {
				last := dst[len(dst)-1]
				for k := 0; k < length; k++ {
					dst = append(dst, last)
				}
			} else {
				from := len(dst) - disp
				for k := 0; k < length; k++ {
					dst = append(dst, dst[from+k])
				}
			}
		}

		if in >= len(body) {
			break
		}
	}

	return dst, in, nil
}
