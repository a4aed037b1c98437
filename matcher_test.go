package lzparse

import (
	"bytes"
	"strings"
	"testing"
)

// searchAt inserts every position before pos and then searches at pos.
func searchAt(m *Matcher, src []byte, pos int) AbsoluteMatch {
	m.Reset(src)
	for i := 0; i < pos; i++ {
		m.Insert(i)
	}
	return m.Search(pos, len(src))
}

func TestMatcherLongestCandidate(t *testing.T) {
	src := []byte("abcde.abcdf.abcde!")
	var m Matcher
	got := searchAt(&m, src, 12)
	want := AbsoluteMatch{Start: 12, End: 17, Match: 0}
	if got != want {
		t.Fatalf("Search = %+v, want %+v", got, want)
	}
}

func TestMatcherGoodEnough(t *testing.T) {
	src := []byte("abcde.abcdf.abcde!")
	m := Matcher{GoodEnough: 4}
	got := searchAt(&m, src, 12)
	// The most recent candidate is long enough, so the older, longer one
	// is never examined.
	want := AbsoluteMatch{Start: 12, End: 16, Match: 6}
	if got != want {
		t.Fatalf("Search = %+v, want %+v", got, want)
	}
}

func TestMatcherNoCandidates(t *testing.T) {
	src := []byte("abcdefghabcdefgh")
	var m Matcher
	m.Reset(src)
	if got := m.Search(8, len(src)); got != (AbsoluteMatch{}) {
		t.Fatalf("Search with an empty index = %+v", got)
	}
	if got := m.Search(14, len(src)); got != (AbsoluteMatch{}) {
		t.Fatalf("Search too close to the end = %+v", got)
	}
}

func TestMatcherOverlappingRun(t *testing.T) {
	src := bytes.Repeat([]byte{'a'}, 100)
	var m Matcher
	got := searchAt(&m, src, 1)
	want := AbsoluteMatch{Start: 1, End: 100, Match: 0}
	if got != want {
		t.Fatalf("Search = %+v, want %+v", got, want)
	}
}

func TestMatcherMaxLength(t *testing.T) {
	src := bytes.Repeat([]byte("0123456789"), 10)
	m := Matcher{MaxLength: 20}
	got := searchAt(&m, src, 10)
	if got.length() != 20 || got.Start-got.Match != 10 {
		t.Fatalf("Search = %+v, want a 20-byte match at distance 10", got)
	}
}

func TestMatcherSearchLimit(t *testing.T) {
	src := bytes.Repeat([]byte("0123456789"), 10)
	var m Matcher
	m.Reset(src)
	for i := 0; i < 10; i++ {
		m.Insert(i)
	}
	got := m.Search(10, 25)
	if got.End != 25 {
		t.Fatalf("Search(10, 25) = %+v, want End 25", got)
	}
}

func TestMatcherFingerprintLen(t *testing.T) {
	src := []byte("abcdXXXXabcdYYYY")

	m4 := Matcher{FingerprintLen: 4}
	if got := searchAt(&m4, src, 8); got.length() != 4 {
		t.Fatalf("4-byte fingerprint: Search = %+v, want a 4-byte match", got)
	}

	m8 := Matcher{FingerprintLen: 8}
	if got := searchAt(&m8, src, 8); got != (AbsoluteMatch{}) {
		t.Fatalf("8-byte fingerprint: Search = %+v, want no match", got)
	}
}

func TestMatcherMaxDistance(t *testing.T) {
	src := append([]byte("wxyz1234"), make([]byte, 100)...)
	src = append(src, "wxyz1234"...)
	pos := len(src) - 8

	m := Matcher{MaxDistance: 50}
	if got := searchAt(&m, src, pos); got != (AbsoluteMatch{}) {
		t.Fatalf("Search = %+v, want no match beyond MaxDistance", got)
	}

	m = Matcher{}
	got := searchAt(&m, src, pos)
	want := AbsoluteMatch{Start: pos, End: len(src), Match: 0}
	if got != want {
		t.Fatalf("Search = %+v, want %+v", got, want)
	}
}

func TestMatcherExtend(t *testing.T) {
	src := []byte("abcdefgh-abcdefgz")
	var m Matcher
	m.Reset(src)

	if length, offset := m.Extend(0, 9, 0); length != 7 || offset != 9 {
		t.Fatalf("Extend(0, 9, 0) = %d, %d; want 7, 9", length, offset)
	}
	// Not longer than best.
	if length, offset := m.Extend(0, 9, 7); length != 0 || offset != 0 {
		t.Fatalf("Extend(0, 9, 7) = %d, %d; want 0, 0", length, offset)
	}
	// The candidate has to come before pos.
	if length, _ := m.Extend(9, 9, 0); length != 0 {
		t.Fatalf("Extend(9, 9, 0) = %d, want 0", length)
	}
	if length, _ := m.Extend(10, 9, 0); length != 0 {
		t.Fatalf("Extend(10, 9, 0) = %d, want 0", length)
	}
	// Fewer than MinMatch bytes in common.
	if length, _ := m.Extend(1, 9, 0); length != 0 {
		t.Fatalf("Extend(1, 9, 0) = %d, want 0", length)
	}
}

func TestExtendMatch(t *testing.T) {
	for _, tc := range []struct {
		src  string
		i, j int
		want int
	}{
		{"abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz", 0, 27, 53},
		{"abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyZ", 0, 27, 52},
		{"abcdefgh-abcdeXgh", 0, 9, 14},
		{strings.Repeat("a", 40), 0, 1, 40},
		{"ab", 0, 1, 1},
	} {
		if got := extendMatch([]byte(tc.src), tc.i, tc.j); got != tc.want {
			t.Errorf("extendMatch(%q, %d, %d) = %d, want %d", tc.src, tc.i, tc.j, got, tc.want)
		}
	}
}
