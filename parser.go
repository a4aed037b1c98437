package lzparse

// An AbsoluteMatch is like a Match, but it stores indexes into the byte
// stream instead of lengths.
type AbsoluteMatch struct {
	// Start is the index of the first byte.
	Start int

	// End is the index of the byte after the last byte
	// (so that End - Start = Length).
	End int

	// Match is the index of the previous data that matches
	// (Start - Match = Distance).
	Match int
}

func (m AbsoluteMatch) length() int {
	return m.End - m.Start
}

// A Searcher is the source of matches for a Parser. It looks for matches at
// one position at a time, among the positions that have been inserted so far.
type Searcher interface {
	// Search returns the longest match starting at pos and ending no later
	// than max. If there is no match of at least MinMatch bytes, it returns
	// the zero AbsoluteMatch. Search does not insert pos.
	Search(pos, max int) AbsoluteMatch

	// Insert makes pos available as a match candidate for later searches.
	// Positions must be inserted in increasing order.
	Insert(pos int)
}

// A Parser chooses which matches to use to compress the data.
type Parser interface {
	// Parse gets matches from src, chooses which ones to use, and appends
	// them to dst. The matches cover the range of bytes from start to end;
	// the last one has Length 0 and holds the trailing literals.
	Parse(dst []Match, src Searcher, start, end int) []Match
}

// A GreedyParser implements the greedy matching strategy: It goes from start
// to end, taking the longest match at each position, with lazy matching:
// before a match is used, it checks whether the match starting one byte later
// is longer.
type GreedyParser struct {
	// LazySteps is how many times in a row the parser may move a match one
	// byte later. The default is 1; a negative value disables lazy matching.
	LazySteps int
}

func (p *GreedyParser) Parse(dst []Match, src Searcher, start, end int) []Match {
	steps := p.LazySteps
	if steps == 0 {
		steps = 1
	}
	s := start
	nextEmit := start

	for s+MinMatch <= end {
		m := src.Search(s, end)
		if m.length() < MinMatch {
			src.Insert(s)
			s++
			continue
		}

		for i := 0; i < steps && s+1+MinMatch <= end; i++ {
			next := src.Search(s+1, end)
			if next.length() <= m.length() {
				break
			}
			// Give up a literal byte for a longer match.
			src.Insert(s)
			s++
			m = next
		}

		dst = append(dst, Match{
			Unmatched: m.Start - nextEmit,
			Length:    m.length(),
			Distance:  m.Start - m.Match,
		})
		for i := m.Start; i < m.End; i++ {
			src.Insert(i)
		}
		s = m.End
		nextEmit = s
	}

	return append(dst, Match{
		Unmatched: end - nextEmit,
	})
}
