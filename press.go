// The lzparse package finds and chooses LZ77 matches for an LZ4-style block
// compressor.
//
// Compression is split into two steps:
//   - Something that looks for repeated sequences of bytes and decides which
//     ones to use (a MatchFinder, usually a Parser driving a Searcher)
//   - An encoder for the compressed data format
//
// This package contains the first step: a bounded match index, a match
// extender, and two parsing strategies (greedy with lazy lookahead, and an
// optimal parser based on dynamic programming). The block format itself lives
// in the lz4 subpackage.
package lzparse

// MinMatch is the length of the shortest match that can be encoded.
const MinMatch = 4

// MaxDistance is the largest offset that fits in the 16-bit offset field.
const MaxDistance = 65535

// A Match is the basic unit of LZ77 compression.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it is 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// A MatchFinder performs the LZ77 stage of compression, looking for matches.
type MatchFinder interface {
	// FindMatches looks for matches in src, appends them to dst, and returns dst.
	// The last Match appended has Length 0 and carries the trailing literals.
	FindMatches(dst []Match, src []byte) []Match

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new buffer.
	Reset()
}

// An Encoder encodes the data in its final format.
type Encoder interface {
	// Encode appends the encoded format of src to dst, using the match
	// information from matches.
	Encode(dst []byte, src []byte, matches []Match) []byte
}
