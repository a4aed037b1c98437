package lz4

import (
	"encoding/binary"

	"github.com/andybalholm/lzparse"
)

// A BlockEncoder implements the lzparse.Encoder interface, writing in the
// LZ4 block format: a sequence of tokens, each holding a run of literals and
// the match that follows it, ending with a token that holds only literals.
type BlockEncoder struct {
	// Compatible makes the block follow the end-of-block rules of the
	// reference LZ4 implementation: the block ends with at least 5 literal
	// bytes, and the last match starts at least 12 bytes before the end.
	Compatible bool
}

// usable reports whether m, starting at pos in a buffer of n bytes, can be
// written as a match. Matches that can't are written as literals instead.
func usable(m lzparse.Match, pos, n int) bool {
	return m.Length >= lzparse.MinMatch &&
		m.Distance >= 1 &&
		m.Distance <= lzparse.MaxDistance &&
		m.Distance <= pos &&
		pos+m.Length <= n
}

// trimTail drops matches from the end of the list until the rest satisfy the
// end-of-block rules; the bytes they covered become trailing literals.
func trimTail(matches []lzparse.Match) []lzparse.Match {
	trailingLiterals := 0
	for len(matches) > 0 && (trailingLiterals < 5 || trailingLiterals+matches[len(matches)-1].Length < 12) {
		lastMatch := matches[len(matches)-1]
		matches = matches[:len(matches)-1]
		trailingLiterals += lastMatch.Unmatched + lastMatch.Length
	}
	return matches
}

func (e BlockEncoder) Encode(dst []byte, src []byte, matches []lzparse.Match) []byte {
	if e.Compatible {
		matches = trimTail(matches)
	}

	// litStart is where the pending literals begin; pos is where the next
	// match would begin.
	litStart, pos := 0, 0
	for _, m := range matches {
		pos += m.Unmatched
		if !usable(m, pos, len(src)) {
			pos += m.Length
			continue
		}
		dst = appendSequence(dst, src[litStart:pos], m.Length, m.Distance)
		pos += m.Length
		litStart = pos
	}

	// Write the final, literals-only sequence.
	literals := src[litStart:]
	token := byte(0)
	if len(literals) > 14 {
		token |= 0xf0
	} else {
		token |= byte(len(literals) << 4)
	}
	dst = append(dst, token)
	if len(literals) > 14 {
		dst = appendInt(dst, len(literals)-15)
	}
	return append(dst, literals...)
}

func appendSequence(dst, literals []byte, length, distance int) []byte {
	token := byte(0)
	if len(literals) > 14 {
		token |= 0xf0
	} else {
		token |= byte(len(literals) << 4)
	}
	if length > 18 {
		token |= 0x0f
	} else {
		token |= byte(length - 4)
	}
	dst = append(dst, token)

	if len(literals) > 14 {
		dst = appendInt(dst, len(literals)-15)
	}
	dst = append(dst, literals...)

	dst = binary.LittleEndian.AppendUint16(dst, uint16(distance))
	if length > 18 {
		dst = appendInt(dst, length-19)
	}
	return dst
}

// appendInt appends n to dst in LZ4's variable-length integer format.
func appendInt(dst []byte, n int) []byte {
	for n >= 255 {
		dst = append(dst, 255)
		n -= 255
	}
	dst = append(dst, byte(n))
	return dst
}

// EncodedLen returns the number of bytes BlockEncoder{Compatible: compatible}
// would produce for a buffer of n bytes with matches.
func EncodedLen(matches []lzparse.Match, n int, compatible bool) int {
	if compatible {
		matches = trimTail(matches)
	}

	size := 0
	litStart, pos := 0, 0
	for _, m := range matches {
		pos += m.Unmatched
		if !usable(m, pos, n) {
			pos += m.Length
			continue
		}
		literals := pos - litStart
		size += 1 + literals + lenBytes(literals) + 2 + lenBytes(m.Length-lzparse.MinMatch)
		pos += m.Length
		litStart = pos
	}
	literals := n - litStart
	return size + 1 + literals + lenBytes(literals)
}

// lenBytes returns the number of extension bytes appendInt writes for a
// length field holding n.
func lenBytes(n int) int {
	if n < 15 {
		return 0
	}
	return 1 + (n-15)/255
}
