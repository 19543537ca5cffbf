package lznt1

import (
	"encoding/binary"
)

// CompressOptions configures compression (match search effort).
type CompressOptions struct {
	// SearchDepth is the number of hash chain entries inspected per position.
	// 0 = literals only; higher values trade speed for ratio.
	SearchDepth int
}

// DefaultCompressOptions returns options for default compression (search depth 16).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		SearchDepth: maxDepth,
	}
}

// Compress compresses src into a framed LZNT1 stream. Options nil means
// DefaultCompressOptions(). Compression is total: chunks that would not
// shrink are stored raw, so any input (including empty) yields a stream
// that decompresses back to src.
func Compress(src []byte, opts *CompressOptions) []byte {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	mf := newMatchFinder()
	// Pre-allocate for the incompressible case: 2 header bytes per chunk.
	out := make([]byte, 0, len(src)+2*(len(src)/ChunkSize+1))

	for srcPos := 0; srcPos < len(src); {
		chunkLen := len(src) - srcPos
		if chunkLen > ChunkSize {
			chunkLen = ChunkSize
		}
		chunk := src[srcPos : srcPos+chunkLen]

		// Reserve the header, compress, then patch or revert.
		start := len(out)
		out = append(out, 0, 0)
		out = compressChunk(chunk, out, mf, opts.SearchDepth)

		if payload := len(out) - start - 2; payload < chunkLen {
			binary.LittleEndian.PutUint16(out[start:], encodeHeader(HeaderCompressed, payload))
		} else {
			// No savings: drop the candidate and store the chunk raw.
			out = out[:start]
			header := encodeHeader(HeaderRaw, chunkLen)
			out = append(out, byte(header), byte(header>>8))
			out = append(out, chunk...)
		}

		srcPos += chunkLen
	}

	return out
}

// compressChunk greedily encodes one chunk (max 4096 bytes) as tag groups.
// At each position the reference width split follows lengthBits(pos), which
// bounds both the farthest displacement worth searching and the longest
// encodable length; the length is further capped at the chunk end so the
// decoder's window and capacity checks always hold for our own output.
func compressChunk(chunk, out []byte, mf *matchFinder, depth int) []byte {
	mf.reset()
	var ta tagAccumulator

	pos := 0
	for pos < len(chunk) {
		split := lengthBits(pos)

		maxLen := 1<<split + MinMatch - 1
		if rem := len(chunk) - pos; maxLen > rem {
			maxLen = rem
		}
		maxDisp := 1 << (16 - split)

		length, disp := mf.find(chunk, pos, maxLen, maxDisp, depth)
		if length >= MinMatch {
			tuple := uint16((disp-1)<<split | (length - MinMatch)) // #nosec G115 -- both fields fit their split
			out = ta.pushReference(tuple, out)

			// Index every matched byte so later matches can start inside this one.
			for end := pos + length; pos < end; pos++ {
				mf.update(chunk, pos)
			}
		} else {
			out = ta.pushLiteral(chunk[pos], out)
			mf.update(chunk, pos)
			pos++
		}
	}

	return ta.flush(out)
}
