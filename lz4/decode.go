package lz4

import (
	"encoding/binary"
	"fmt"

	"github.com/andybalholm/lzparse"
)

// A Token is one decoded unit of a block: a run of literals, and the match
// that follows it. The final token of a block has no match.
type Token struct {
	// Literals is the literal run, as a subslice of the block.
	Literals []byte

	MatchLen int // the length of the match; 0 for the final token
	Offset   int // how far back the match copies from; 0 for the final token

	Last bool
}

// tokenReader splits a block into tokens.
type tokenReader struct {
	src []byte
	pos int
}

func (r *tokenReader) done() bool {
	return r.pos == len(r.src)
}

// readInt reads the extension of a length field whose nibble was 15.
func (r *tokenReader) readInt() (int, error) {
	n := 0
	for {
		if r.pos >= len(r.src) {
			return 0, fmt.Errorf("%w at byte %d", ErrTruncatedLength, r.pos)
		}
		b := r.src[r.pos]
		r.pos++
		n += int(b)
		if b != 255 {
			return n, nil
		}
	}
}

func (r *tokenReader) next() (Token, error) {
	var t Token
	token := r.src[r.pos]
	r.pos++

	litLen := int(token >> 4)
	if litLen == 15 {
		n, err := r.readInt()
		if err != nil {
			return t, err
		}
		litLen += n
	}
	if litLen > len(r.src)-r.pos {
		return t, fmt.Errorf("%w: %d bytes declared at byte %d, %d left", ErrTruncatedLiterals, litLen, r.pos, len(r.src)-r.pos)
	}
	t.Literals = r.src[r.pos : r.pos+litLen]
	r.pos += litLen

	if r.done() {
		t.Last = true
		return t, nil
	}

	if len(r.src)-r.pos < 2 {
		return t, fmt.Errorf("%w at byte %d", ErrTruncatedOffset, r.pos)
	}
	// The offset field is 16 bits, so it can't exceed lzparse.MaxDistance.
	t.Offset = int(binary.LittleEndian.Uint16(r.src[r.pos:]))
	if t.Offset == 0 {
		return t, fmt.Errorf("%w at byte %d", ErrZeroOffset, r.pos)
	}
	r.pos += 2

	matchLen := int(token & 0x0f)
	if matchLen == 15 {
		n, err := r.readInt()
		if err != nil {
			return t, err
		}
		matchLen += n
	}
	t.MatchLen = matchLen + lzparse.MinMatch

	if r.done() {
		return t, fmt.Errorf("%w after byte %d", ErrMissingFinalToken, r.pos)
	}
	return t, nil
}

// Decode decompresses the block in src, appends the result to dst, and
// returns the extended buffer. Matches may only refer to bytes produced from
// src, not to the earlier contents of dst.
//
// If src is malformed, Decode returns a nil slice and an error wrapping
// ErrCorrupt.
func Decode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	base := len(dst)
	r := tokenReader{src: src}
	for {
		t, err := r.next()
		if err != nil {
			return nil, err
		}
		dst = append(dst, t.Literals...)
		if t.Last {
			return dst, nil
		}

		if t.Offset > len(dst)-base {
			return nil, fmt.Errorf("%w: offset %d with %d bytes of output", ErrOffsetOutOfRange, t.Offset, len(dst)-base)
		}
		start := len(dst) - t.Offset
		if t.Offset < t.MatchLen {
			// The match overlaps the bytes it is producing, so copy one byte
			// at a time; each byte written becomes the source for a later one.
			for i := 0; i < t.MatchLen; i++ {
				dst = append(dst, dst[start+i])
			}
		} else {
			dst = append(dst, dst[start:start+t.MatchLen]...)
		}
	}
}

// Tokens splits the block in src into its tokens without expanding the
// matches. It checks the block the same way Decode does.
func Tokens(src []byte) ([]Token, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	var tokens []Token
	outLen := 0
	r := tokenReader{src: src}
	for {
		t, err := r.next()
		if err != nil {
			return nil, err
		}
		outLen += len(t.Literals)
		if !t.Last && t.Offset > outLen {
			return nil, fmt.Errorf("%w: offset %d with %d bytes of output", ErrOffsetOutOfRange, t.Offset, outLen)
		}
		outLen += t.MatchLen
		tokens = append(tokens, t)
		if t.Last {
			return tokens, nil
		}
	}
}
