/*
Package lznt1 implements LZNT1 compression and decompression.

Format: the stream is a sequence of independently framed chunks of up to
4096 original bytes. Each chunk starts with a 2-byte little-endian header:
bits 0..11 payload size minus one, bits 12..14 signature 011, bit 15
compressed flag (0x3000|n raw, 0xB000|n compressed). A compressed payload
is a sequence of tag groups: one flag byte for up to 8 items, bit clear =
1-byte literal, bit set = 2-byte back-reference. A reference packs
(displacement-1)<<lengthBits | (length-3); the length/offset split adapts
with the position inside the chunk, from 4 offset bits near the chunk start
up to 12 past 0x800 decoded bytes. References never reach before the
current chunk's start, and displacement < length repeats bytes run-length
style. A zero header (or a lone trailing zero byte) terminates the stream.

Use Compress(src, opts) with nil for default search depth; chunks that would
not shrink are stored raw, so compression never fails.
Use Decompress(src, opts) with nil for default (lenient header validation).
Use DecompressBlock(src, opts) to decode from the beginning of src and get consumed bytes.
Use DecompressFromReader(r, opts) to decode one stream without reading r to EOF.
Use StrictOptions() to reject headers whose signature bits are not 011.
Set CompressOptions.SearchDepth to 0 for literals-only output.

# Examples

Round-trip compress and decompress:

	enc := lznt1.Compress(data, nil)
	dec, err := lznt1.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Decompress one stream from a byte stream and continue from current stream position:

	out, consumed, err := lznt1.DecompressFromReader(r, nil)
	if err != nil {
		return err
	}
	_ = consumed

Decompress with strict header signature validation:

	out, err := lznt1.Decompress(src, lznt1.StrictOptions())
	if err != nil {
		return err
	}

Compress with a deeper match search:

	opts := &lznt1.CompressOptions{SearchDepth: 64}
	enc := lznt1.Compress(data, opts)
*/
package lznt1
