package lznt1

// HeaderCheckMode defines how strictly chunk header signature bits are validated.
type HeaderCheckMode int

// Header check mode constants.
const (
	HeaderLenient HeaderCheckMode = iota // Only the size and compressed flag are consulted (default).
	HeaderStrict                         // Signature bits 12..14 must be 011; otherwise ErrInvalidHeader.
)

// Options configures Decompress behavior.
type Options struct {
	// HeaderCheck sets lenient vs strict header signature validation.
	// Lenient matches the permissive decoders in the wild, which accept
	// headers written by tools that leave the signature bits non-conformant.
	HeaderCheck HeaderCheckMode
}

// DefaultOptions returns options for default behavior: lenient header validation.
func DefaultOptions() *Options {
	return &Options{
		HeaderCheck: HeaderLenient,
	}
}

// StrictOptions returns options that reject headers whose signature bits are not 011.
func StrictOptions() *Options {
	return &Options{
		HeaderCheck: HeaderStrict,
	}
}
