package lznt1

// LZNT1 format constants.
const (
	ChunkSize        = 4096   // Maximum original bytes framed by one chunk.
	MinMatch         = 3      // Minimum back-reference length (lengths encode as length-3).
	TagGroupSize     = 8      // Items per tag group (one flag bit each: 0=literal, 1=back-reference).
	HeaderRaw        = 0x3000 // Header base for raw chunks: 0x3000 | (size-1).
	HeaderCompressed = 0xB000 // Header base for compressed chunks: 0xB000 | (size-1).
)

// Header bit layout: bits 0..11 size-1, bits 12..14 signature 011, bit 15 compressed flag.
const (
	headerSizeMask       = 0x0FFF
	headerSignatureMask  = 0x7000
	headerSignature      = 0x3000
	headerFlagCompressed = 0x8000
)

// encodeHeader packs a chunk header from its base flags and the payload size in bytes.
func encodeHeader(flags uint16, size int) uint16 {
	return flags | uint16(size-1)&headerSizeMask // #nosec G115 -- size is 1..4096
}
