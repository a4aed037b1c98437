package lzparse

import "encoding/binary"

const defaultGoodEnough = 1024

// A Matcher is an implementation of the Searcher interface. It keeps the
// positions of previously seen fingerprints in an Index, and measures each
// candidate against the buffer being compressed.
type Matcher struct {
	// FingerprintLen is the number of bytes used as the Index key.
	// It must be 4 or 8; the default is 4.
	FingerprintLen int

	// MaxDistance is the maximum distance (in bytes) to look back for
	// a match. The default (and the maximum) is 65535.
	MaxDistance int

	// MaxLength is the limit on the length of a match; 0 means unlimited.
	MaxLength int

	// GoodEnough stops the search at a position as soon as a match at
	// least this long is found. The default is 1024.
	GoodEnough int

	Index Index

	src        []byte
	candidates []int
}

// Reset prepares m to search src, discarding all previous positions.
func (m *Matcher) Reset(src []byte) {
	if m.FingerprintLen != 8 {
		m.FingerprintLen = 4
	}
	if m.MaxDistance <= 0 || m.MaxDistance > MaxDistance {
		m.MaxDistance = MaxDistance
	}
	if m.GoodEnough == 0 {
		m.GoodEnough = defaultGoodEnough
	}
	m.Index.Reset()
	m.src = src
}

func (m *Matcher) fingerprint(pos int) uint64 {
	if m.FingerprintLen == 8 {
		return binary.LittleEndian.Uint64(m.src[pos:])
	}
	return uint64(binary.LittleEndian.Uint32(m.src[pos:]))
}

// Insert records the fingerprint at pos in the Index.
func (m *Matcher) Insert(pos int) {
	if pos+m.FingerprintLen > len(m.src) {
		return
	}
	m.Index.Insert(m.fingerprint(pos), pos)
}

// Search returns the longest match for the bytes at pos, considering the
// positions recorded for the same fingerprint.
func (m *Matcher) Search(pos, max int) AbsoluteMatch {
	if max > len(m.src) {
		max = len(m.src)
	}
	if pos+m.FingerprintLen > max {
		return AbsoluteMatch{}
	}
	src := m.src[:max]

	m.candidates = m.Index.Lookup(m.candidates[:0], m.fingerprint(pos))

	var best AbsoluteMatch
	bestLen := MinMatch - 1
	for _, c := range m.candidates {
		if pos-c > m.MaxDistance {
			// The rest of the candidates are even older.
			break
		}
		length, offset := m.extend(src, c, pos, bestLen)
		if length > bestLen {
			bestLen = length
			best = AbsoluteMatch{
				Start: pos,
				End:   pos + length,
				Match: pos - offset,
			}
			if bestLen >= m.GoodEnough {
				break
			}
		}
	}
	return best
}

// Extend measures the match between the bytes at cand and the bytes at pos.
// If the match is not longer than best, or cand is out of range, it returns
// (0, 0).
func (m *Matcher) Extend(cand, pos, best int) (length, offset int) {
	return m.extend(m.src, cand, pos, best)
}

func (m *Matcher) extend(src []byte, cand, pos, best int) (length, offset int) {
	offset = pos - cand
	if offset < 1 || offset > m.MaxDistance || cand < 0 {
		return 0, 0
	}
	if m.MaxLength > 0 && pos+m.MaxLength < len(src) {
		src = src[:pos+m.MaxLength]
	}
	if best < MinMatch-1 {
		best = MinMatch - 1
	}

	// A longer match than best has to agree on the byte just past best.
	// Checking it first skips most candidates without a scan.
	if pos+best >= len(src) || src[cand+best] != src[pos+best] {
		return 0, 0
	}
	if binary.LittleEndian.Uint32(src[cand:]) != binary.LittleEndian.Uint32(src[pos:]) {
		return 0, 0
	}

	end := extendMatch(src, cand+MinMatch, pos+MinMatch)
	if end-pos <= best {
		return 0, 0
	}
	return end - pos, offset
}
