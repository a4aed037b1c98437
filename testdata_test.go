package lzparse

import "math/rand"

var words = []string{
	"the", "light", "of", "rays", "which", "are", "refracted", "and", "reflected",
	"by", "a", "prism", "glass", "colour", "red", "violet", "experiment", "in",
	"that", "is", "to", "be", "observed", "sun", "hole", "window", "shutter",
}

// sampleText returns n bytes of repetitive English-like text. The same seed
// always produces the same text.
func sampleText(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, 0, n+16)
	for len(b) < n {
		b = append(b, words[r.Intn(len(words))]...)
		switch r.Intn(12) {
		case 0:
			b = append(b, ". "...)
		case 1:
			b = append(b, ", "...)
		case 2:
			b = append(b, '\n')
		default:
			b = append(b, ' ')
		}
	}
	return b[:n]
}

// randomBytes returns n bytes that hardly compress at all.
func randomBytes(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}
