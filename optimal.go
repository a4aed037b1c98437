package lzparse

// An OptimalParser chooses matches by dynamic programming, minimizing the
// estimated size of the encoded block instead of taking the longest match at
// each position. It makes three passes:
//
//  1. Find the longest match at every position.
//  2. Working backward from the end, compute the cheapest way to encode the
//     rest of the input from each position: a literal, or a match of any
//     length up to the longest one found there.
//  3. Emit the matches along the cheapest path.
//
// The costs follow the LZ4 block format: a literal costs one byte, plus one
// more each time the literal run needs another length byte; a match costs
// three bytes (token and offset), plus its extra length bytes.
type OptimalParser struct {
	// EndLiterals is the number of bytes at the end of the input that are
	// always literals. The default is 5.
	EndLiterals int

	// SharedMatch is the length above which a match found at one position is
	// reused (one byte shorter, same distance) at the next position without
	// searching. The default is 1024.
	SharedMatch int

	// MaxScan limits how many match lengths are scored at each position.
	// Lengths from MinMatch to MaxScan are scored individually; a longer
	// match is scored only at its full length. The default is 1024.
	MaxScan int

	lengths []int32
	offsets []uint16
	cost    []int32
	run     []int32
	choice  []int32
}

const (
	defaultEndLiterals = 5
	defaultSharedMatch = 1024
	defaultMaxScan     = 1024

	literalCost   = 1
	matchOverhead = 3
)

// extraBytes returns the number of extension bytes needed for a length field
// holding n.
func extraBytes(n int) int {
	if n < 15 {
		return 0
	}
	return 1 + (n-15)/255
}

func resize32(s []int32, n int) []int32 {
	if cap(s) < n {
		return make([]int32, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}

func (p *OptimalParser) Parse(dst []Match, src Searcher, start, end int) []Match {
	if p.EndLiterals <= 0 {
		p.EndLiterals = defaultEndLiterals
	}
	if p.SharedMatch <= 0 {
		p.SharedMatch = defaultSharedMatch
	}
	if p.SharedMatch < MinMatch {
		p.SharedMatch = MinMatch
	}
	if p.MaxScan < MinMatch {
		p.MaxScan = defaultMaxScan
	}

	n := end - start
	if n <= 0 {
		return append(dst, Match{})
	}

	p.lengths = resize32(p.lengths, n)
	if cap(p.offsets) < n {
		p.offsets = make([]uint16, n)
	}
	p.offsets = p.offsets[:n]
	p.cost = resize32(p.cost, n+1)
	p.run = resize32(p.run, n+1)
	p.choice = resize32(p.choice, n)

	// Pass 1: the longest match at each position.
	limit := n - p.EndLiterals
	prevLen, prevDist := 0, 0
	for i := 0; i < limit; i++ {
		var length, dist int
		if prevLen-1 > p.SharedMatch {
			// Inside a long match, the next position matches the same data,
			// one byte shorter.
			length, dist = prevLen-1, prevDist
		} else {
			m := src.Search(start+i, end)
			length, dist = m.length(), m.Start-m.Match
		}
		src.Insert(start + i)

		if length < MinMatch {
			prevLen, prevDist = 0, 0
			continue
		}
		p.lengths[i] = int32(length)
		p.offsets[i] = uint16(dist)
		prevLen, prevDist = length, dist
	}

	// Pass 2: the cheapest encoding of src[i:] for each i.
	for i := n - 1; i >= 0; i-- {
		run := p.run[i+1] + 1
		best := p.cost[i+1] + literalCost
		if run == 15 || (run > 15 && (run-15)%255 == 0) {
			// The literal run just grew another length byte.
			best++
		}
		choice := int32(0)

		if longest := int(p.lengths[i]); longest >= MinMatch {
			scan := longest
			if scan > p.MaxScan {
				scan = p.MaxScan
			}
			for j := MinMatch; j <= scan; j++ {
				c := p.cost[i+j] + int32(matchOverhead+extraBytes(j-MinMatch))
				// On a tie, the match wins.
				if c <= best {
					best = c
					choice = int32(j)
				}
			}
			if longest > scan {
				c := p.cost[i+longest] + int32(matchOverhead+extraBytes(longest-MinMatch))
				if c <= best {
					best = c
					choice = int32(longest)
				}
			}
		}

		p.cost[i] = best
		p.choice[i] = choice
		if choice > 0 {
			p.run[i] = 0
		} else {
			p.run[i] = run
		}
	}

	// Pass 3: emit the chosen matches.
	nextEmit := 0
	for i := 0; i < n; {
		j := int(p.choice[i])
		if j == 0 {
			i++
			continue
		}
		dst = append(dst, Match{
			Unmatched: i - nextEmit,
			Length:    j,
			Distance:  int(p.offsets[i]),
		})
		i += j
		nextEmit = i
	}

	return append(dst, Match{
		Unmatched: n - nextEmit,
	})
}
