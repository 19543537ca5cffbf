package lznt1

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// chunkState drives decoding of a single chunk.
type chunkState int

// Chunk decoder states: Start branches on the header flag, RawCopy copies
// the payload verbatim, GroupLoop walks tag groups until the declared
// payload is consumed.
const (
	stateStart chunkState = iota
	stateRawCopy
	stateGroupLoop
	stateDone
)

// chunkDecoder decodes one chunk body (header already parsed) into the
// shared output buffer. Compressed chunks resolve back-references against
// their own decoded prefix only; the window resets at every chunk boundary.
type chunkDecoder struct {
	body       []byte
	compressed bool
	state      chunkState
}

// run executes the chunk state machine, appending decoded bytes to dst.
func (d *chunkDecoder) run(dst []byte) ([]byte, error) {
	for d.state != stateDone {
		switch d.state {
		case stateStart:
			if d.compressed {
				d.state = stateGroupLoop
			} else {
				d.state = stateRawCopy
			}

		case stateRawCopy:
			dst = append(dst, d.body...)
			d.state = stateDone

		case stateGroupLoop:
			base := len(dst)
			for in := 0; in < len(d.body); {
				var err error
				dst, in, err = decodeGroup(d.body, in, dst, base)
				if err != nil {
					return nil, err
				}
			}
			d.state = stateDone
		}
	}

	return dst, nil
}

// Decompress decompresses a whole LZNT1 stream. Options nil means
// DefaultOptions (lenient header validation). The stream ends at end of
// input, at a zero header, or at a lone trailing zero byte; bytes after a
// zero terminator are ignored, as the permissive reference decoders do.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out, _, err := DecompressBlock(src, opts)

	return out, err
}

// DecompressBlock decompresses one LZNT1 stream from the beginning of src.
// It returns decompressed bytes and the number of consumed input bytes,
// which is less than len(src) when a zero header terminates the stream early.
func DecompressBlock(src []byte, opts *Options) ([]byte, int, error) {
	reader := &sliceByteReader{data: src}
	out, err := decompressFromByteReader(reader, opts)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses one LZNT1 stream from r and returns
// consumed bytes. Reading stops at the stream terminator, so r may carry
// further data after the stream.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := decompressFromByteReader(countingReader, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decompressFromByteReader iterates chunk headers until the stream ends,
// delegating chunk bodies to chunkDecoder.
func decompressFromByteReader(r io.ByteReader, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	out := make([]byte, 0, ChunkSize)
	body := make([]byte, 0, ChunkSize)

	for {
		lo, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil // Clean end at a chunk boundary.
			}

			return nil, err
		}

		hi, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if lo == 0 {
					return out, nil // Lone null terminator byte.
				}

				return nil, fmt.Errorf("%w: header cut to one byte", ErrTruncatedInput)
			}

			return nil, err
		}

		header := uint16(lo) | uint16(hi)<<8
		if header == 0 {
			return out, nil // Zero header: end-of-stream marker.
		}

		if opts.HeaderCheck == HeaderStrict && header&headerSignatureMask != headerSignature {
			return nil, fmt.Errorf("%w: 0x%04x", ErrInvalidHeader, header)
		}

		size := int(header&headerSizeMask) + 1
		body = body[:0]
		for i := 0; i < size; i++ {
			b, err := r.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("%w: chunk declares %d bytes, found %d", ErrTruncatedInput, size, i)
				}

				return nil, err
			}

			body = append(body, b)
		}

		decoder := chunkDecoder{body: body, compressed: header&headerFlagCompressed != 0}
		out, err = decoder.run(out)
		if err != nil {
			return nil, err
		}
	}
}
