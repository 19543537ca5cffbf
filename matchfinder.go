package lznt1

// Hash chain constants.
const (
	hashMask  = 0xFFF          // 4096-entry table, 12-bit hash.
	emptySlot = uint16(0xFFFF) // Marks an unused head or chain end.
	maxDepth  = 16             // Default chain entries inspected per position.
)

// matchFinder is a greedy hash-chain searcher over the current chunk's
// already-processed prefix. head maps a 3-byte hash to the most recent
// position, next chains each position to the previous one with the same
// hash, so candidates are visited nearest first and equal-length matches
// resolve to the smallest displacement. Reused across chunks to avoid
// reallocating the tables; only head needs clearing per chunk, stale next
// entries are unreachable once head is reset.
type matchFinder struct {
	head [ChunkSize]uint16
	next [ChunkSize]uint16
}

func newMatchFinder() *matchFinder {
	m := &matchFinder{}
	for i := range m.head {
		m.head[i] = emptySlot
	}

	return m
}

// reset clears the table for a new chunk.
func (m *matchFinder) reset() {
	for i := range m.head {
		m.head[i] = emptySlot
	}
}

// update inserts pos into the chain for its 3-byte prefix. Called for every
// byte the encoder advances over, matched or literal, so later searches can
// start matches inside earlier ones.
func (m *matchFinder) update(chunk []byte, pos int) {
	if pos+MinMatch > len(chunk) {
		return
	}

	h := hash3(chunk[pos], chunk[pos+1], chunk[pos+2])
	m.next[pos] = m.head[h]
	m.head[h] = uint16(pos) // #nosec G115 -- pos < ChunkSize
}

// find returns the longest match at pos no longer than maxLen and no farther
// back than maxDisp, walking at most depth chain entries. Returns length 0
// when nothing of at least MinMatch is found.
func (m *matchFinder) find(chunk []byte, pos, maxLen, maxDisp, depth int) (length, disp int) {
	if depth <= 0 || maxLen < MinMatch || pos+MinMatch > len(chunk) {
		return 0, 0
	}

	cand := m.head[hash3(chunk[pos], chunk[pos+1], chunk[pos+2])]
	for d := 0; cand != emptySlot && d < depth; d++ {
		c := int(cand)
		if c >= pos {
			break
		}

		dist := pos - c
		if dist > maxDisp {
			break // Chain positions only get older; everything further is out of range too.
		}

		// Check the byte a longer match must extend through to fail fast.
		if pos+length < len(chunk) && chunk[c+length] == chunk[pos+length] {
			n := prefixLen(chunk, c, pos, maxLen)
			if n >= MinMatch && n > length {
				length = n
				disp = dist
				if length == maxLen {
					break
				}
			}
		}

		cand = m.next[c]
	}

	return length, disp
}

// hash3 hashes a 3-byte prefix into the table index.
func hash3(b0, b1, b2 byte) int {
	return (int(b0)<<6 ^ int(b1)<<3 ^ int(b2)) & hashMask
}

// prefixLen returns the common length of chunk[from:] and chunk[pos:], up to
// limit. from < pos, and the ranges may overlap: matched bytes re-read what
// an earlier iteration compared, which is exactly the self-referencing run
// the decoder reproduces.
func prefixLen(chunk []byte, from, pos, limit int) int {
	n := 0
	for n < limit && pos+n < len(chunk) && chunk[from+n] == chunk[pos+n] {
		n++
	}

	return n
}
