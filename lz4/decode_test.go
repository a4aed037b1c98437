package lz4

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  []byte
		want error
	}{
		{"empty", nil, ErrEmptyInput},
		{"literal length", []byte{0xf0}, ErrTruncatedLength},
		{"literal length extension", []byte{0xf0, 0xff, 0xff}, ErrTruncatedLength},
		{"literals", []byte{0x30, 'a'}, ErrTruncatedLiterals},
		{"offset", []byte{0x10, 'a', 0x01}, ErrTruncatedOffset},
		{"zero offset", []byte{0x10, 'a', 0x00, 0x00, 0x00}, ErrZeroOffset},
		{"offset out of range", []byte{0x10, 'a', 0x02, 0x00, 0x00}, ErrOffsetOutOfRange},
		{"match length", []byte{0x1f, 'a', 0x01, 0x00}, ErrTruncatedLength},
		{"no final token", []byte{0x10, 'a', 0x01, 0x00}, ErrMissingFinalToken},
		{"no final token after extension", []byte{0x1f, 'a', 0x01, 0x00, 0x05}, ErrMissingFinalToken},
	} {
		out, err := Decompress(tc.src)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got error %v, want %v", tc.name, err, tc.want)
		}
		if !errors.Is(err, ErrCorrupt) {
			t.Errorf("%s: error %v doesn't wrap ErrCorrupt", tc.name, err)
		}
		if out != nil {
			t.Errorf("%s: got %d bytes of output along with the error", tc.name, len(out))
		}

		if _, err := Tokens(tc.src); !errors.Is(err, tc.want) {
			t.Errorf("%s: Tokens returned %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestDecodeLiteralsOnly(t *testing.T) {
	out, err := Decompress([]byte{0x00})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("got %q, want nothing", out)
	}

	out, err = Decompress([]byte{0x50, 'h', 'e', 'l', 'l', 'o'})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello" {
		t.Fatalf("got %q, want %q", out, "hello")
	}
}

func TestDecodeOverlap(t *testing.T) {
	// "ab", then copy 10 bytes from 2 back, then the final token.
	out, err := Decompress([]byte{0x26, 'a', 'b', 0x02, 0x00, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if want := "abababababab"; string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	// Offset 1 repeats a single byte.
	src := bytes.Repeat([]byte{'q'}, 1000)
	compressed := Compress(src, nil)
	out, err = Decompress(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, src) {
		t.Fatal("decompressed output does not match")
	}
	if len(compressed) > 10 {
		t.Fatalf("1000 identical bytes compressed to %d bytes", len(compressed))
	}
}

func TestDecodeAppend(t *testing.T) {
	compressed := Compress([]byte("abcabcabcabc, abcabcabcabc"), nil)
	out, err := Decode([]byte("prefix:"), compressed)
	if err != nil {
		t.Fatal(err)
	}
	if want := "prefix:abcabcabcabc, abcabcabcabc"; string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	// A match can't reach back into dst.
	_, err = Decode([]byte("xyz"), []byte{0x10, 'a', 0x02, 0x00, 0x00})
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Fatalf("got error %v, want %v", err, ErrOffsetOutOfRange)
	}
}

func TestTokens(t *testing.T) {
	tokens, err := Tokens([]byte{0x00})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || !tokens[0].Last || len(tokens[0].Literals) != 0 {
		t.Fatalf("got %+v, want a single empty final token", tokens)
	}

	tokens, err = Tokens(Compress(bytes.Repeat([]byte{'a'}, 1000), nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tok := tokens[0]; string(tok.Literals) != "a" || tok.MatchLen != 999 || tok.Offset != 1 || tok.Last {
		t.Fatalf("first token = %+v", tok)
	}
	if tok := tokens[1]; len(tok.Literals) != 0 || !tok.Last {
		t.Fatalf("second token = %+v", tok)
	}
}

func TestTokensFindMatches(t *testing.T) {
	tokens, err := Tokens(Compress([]byte("abcabcabcabc"), nil))
	if err != nil {
		t.Fatal(err)
	}
	matches := 0
	for _, tok := range tokens {
		if !tok.Last {
			matches++
		}
	}
	if matches == 0 {
		t.Fatal("no matches in the compressed block")
	}
}
