package lznt1

import "io"

// sliceByteReader feeds a byte slice to the chunk-stream loop; pos doubles
// as the consumed-byte count reported by DecompressBlock.
type sliceByteReader struct {
	data []byte
	pos  int
}

// ReadByte returns the next byte or io.EOF past the end of the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// countingByteReader wraps an io.ByteReader and counts delivered bytes, so
// DecompressFromReader can report how far into the stream it stopped. Bytes
// the wrapped reader buffered but never delivered are not counted.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

// ReadByte reads one byte from the wrapped reader and counts it.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
