package lz4

import "github.com/andybalholm/lzparse"

// Strategy selects the parser used by Compress.
type Strategy int

const (
	// Greedy takes the longest match at each position, with lazy matching.
	Greedy Strategy = iota

	// Optimal chooses matches by dynamic programming over the whole buffer.
	// It is slower, and its output is never larger than Greedy's.
	Optimal
)

func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case Optimal:
		return "optimal"
	}
	return "unknown"
}

// Options configures Compress. Zero fields take the defaults documented on
// the corresponding lzparse types.
type Options struct {
	Strategy Strategy

	// FingerprintLen is the number of bytes hashed to find candidates: 4 or 8.
	FingerprintLen int
	// HistoryLen is the number of positions kept per fingerprint.
	HistoryLen int
	// MaxKeys is the number of fingerprints kept; negative means no limit.
	MaxKeys  int
	Eviction lzparse.Eviction

	// GoodEnough stops the search at a position once a match this long is found.
	GoodEnough int
	// MaxLength limits the length of a single match; 0 means unlimited.
	MaxLength int

	// LazySteps is used by the Greedy strategy.
	LazySteps int

	// SharedMatch and MaxScan are used by the Optimal strategy.
	SharedMatch int
	MaxScan     int

	// Compatible makes the output follow the end-of-block rules of the
	// reference LZ4 implementation, so that other LZ4 block decoders accept it.
	Compatible bool
}

// DefaultOptions returns the options used when Compress is called with nil.
func DefaultOptions() *Options {
	return &Options{
		Strategy:       Greedy,
		FingerprintLen: 4,
		HistoryLen:     100,
		MaxKeys:        1 << 20,
		GoodEnough:     1024,
		LazySteps:      1,
		SharedMatch:    1024,
		MaxScan:        1024,
	}
}

// NewMatchFinder returns a MatchFinder configured by opts.
func NewMatchFinder(opts *Options) lzparse.MatchFinder {
	if opts == nil {
		opts = DefaultOptions()
	}

	var p lzparse.Parser
	switch opts.Strategy {
	case Optimal:
		p = &lzparse.OptimalParser{
			SharedMatch: opts.SharedMatch,
			MaxScan:     opts.MaxScan,
		}
	default:
		p = &lzparse.GreedyParser{
			LazySteps: opts.LazySteps,
		}
	}

	return &lzparse.HistoryFinder{
		Matcher: lzparse.Matcher{
			FingerprintLen: opts.FingerprintLen,
			MaxLength:      opts.MaxLength,
			GoodEnough:     opts.GoodEnough,
			Index: lzparse.Index{
				HistoryLen: opts.HistoryLen,
				MaxKeys:    opts.MaxKeys,
				Eviction:   opts.Eviction,
			},
		},
		Parser: p,
	}
}

// Compress compresses src into a single block. It never fails; an empty src
// produces a block holding only the final token.
func Compress(src []byte, opts *Options) []byte {
	if opts == nil {
		opts = DefaultOptions()
	}

	matches := NewMatchFinder(opts).FindMatches(nil, src)

	if opts.Strategy == Optimal {
		// The optimal parser's literal costs are estimates, so check it
		// against the greedy parse and keep the smaller one.
		greedy := *opts
		greedy.Strategy = Greedy
		baseline := NewMatchFinder(&greedy).FindMatches(nil, src)
		if EncodedLen(baseline, len(src), opts.Compatible) < EncodedLen(matches, len(src), opts.Compatible) {
			matches = baseline
		}
	}

	e := BlockEncoder{Compatible: opts.Compatible}
	return e.Encode(make([]byte, 0, EncodedLen(matches, len(src), opts.Compatible)), src, matches)
}

// Decompress decompresses a block produced by Compress (or by any LZ4 block
// encoder).
func Decompress(src []byte) ([]byte, error) {
	return Decode(make([]byte, 0, 2*len(src)), src)
}
