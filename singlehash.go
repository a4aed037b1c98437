package lzparse

// HistoryFinder is an implementation of the MatchFinder interface that
// looks up earlier occurrences of each fingerprint in a Matcher, and lets a
// Parser choose among them.
//
// Every call to FindMatches starts with an empty Index, so no state is carried
// from one buffer to the next.
type HistoryFinder struct {
	Matcher Matcher

	// Parser chooses the matches. The default is a GreedyParser.
	Parser Parser
}

func (q *HistoryFinder) Reset() {
	q.Matcher.Reset(nil)
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (q *HistoryFinder) FindMatches(dst []Match, src []byte) []Match {
	if q.Parser == nil {
		q.Parser = &GreedyParser{}
	}
	q.Matcher.Reset(src)
	dst = q.Parser.Parse(dst, &q.Matcher, 0, len(src))

	// Don't hold on to src after returning.
	q.Matcher.Reset(nil)
	return dst
}
